package ports

import "github.com/vistamar/pousada-api/internal/core/domain"

// TokenService signs and verifies the bearer tokens that carry identity
// and role between requests. Verification is purely cryptographic plus a
// clock check; there is no server-side revocation.
type TokenService interface {
	Issue(email string, role domain.Role) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}
