package domain

// Role represents the caller's role as resolved by the external user directory
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// IsValid checks if the role is one the platform knows about
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated caller as handed to the core. The core
// trusts this identity as given; token issuance and verification of the
// user record live in the user directory.
type Identity struct {
	UserID string
	Role   Role
}

// IsAdmin checks for the elevated admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanManageEvents checks whether the caller may create events and tickets
func (i Identity) CanManageEvents() bool {
	return i.Role == RoleOrganizer || i.Role == RoleAdmin
}
