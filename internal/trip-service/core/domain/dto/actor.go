package dto

const (
	RoleTourist = "tourist"
	RoleGuide   = "guide"
	RoleAdmin   = "admin"
)

// Actor is the already-authenticated caller identity handed down from the
// auth middleware. The engine trusts it and only checks capability.
type Actor struct {
	ID    string
	Role  string
	Name  string
	Email string
}
