package domain

import "time"

// Role classifies an account. The set is closed: every authorization
// decision switches over exactly these two values, so adding a role is a
// compile-time-visible change.
type Role string

const (
	RoleCliente Role = "cliente"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCliente, RoleAdmin:
		return true
	}
	return false
}

// Account models a registered user. The password hash never leaves the
// server; the json tag guarantees it is stripped from every response.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TokenClaims is the verified identity attached to a request by the auth
// middleware. The role claim is authoritative for the token's lifetime;
// role changes only take effect on re-issue.
type TokenClaims struct {
	Email     string
	Role      Role
	ExpiresAt time.Time
}
