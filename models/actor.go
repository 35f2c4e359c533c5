package models

// Actor is the request-scoped identity resolved from the JWT claims. It is
// passed explicitly to services instead of living in ambient state.
type Actor struct {
	UserID   uint
	Username string
	Role     UserRole
}
