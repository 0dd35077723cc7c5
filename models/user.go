package models

// Roles carried in the bearer credential. The action dispatcher only
// honors an action name when the caller's role matches.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// AuthUser is the caller identity resolved from the bearer credential.
type AuthUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
