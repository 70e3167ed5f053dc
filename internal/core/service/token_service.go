package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies HS256 bearer tokens carrying the
// account email (sub) and role. The signing secret is injected at
// construction and never logged.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a claim set expiring ttl from now.
func (s *TokenService) Issue(email string, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"exp":  s.now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
// A token is rejected from the exact expiry instant onward (no leeway).
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if email == "" || !role.Valid() {
		return nil, domain.ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{Email: email, Role: role, ExpiresAt: exp.Time}, nil
}
