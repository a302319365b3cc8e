package domain

import "strings"

// Role is the closed set of user roles. The zero value RoleNone is not a role:
// it stands for anything the backend sent that is outside the set, and
// matches no role specific branch.
type Role int

const (
	RoleNone Role = iota
	RoleCustomer
	RoleSeller
	RoleAdmin
)

// ParseRole maps a wire role name (CUSTOMER, SELLER, ADMIN; any case) to a Role.
// Unknown names yield RoleNone and false.
func ParseRole(s string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CUSTOMER":
		return RoleCustomer, true
	case "SELLER":
		return RoleSeller, true
	case "ADMIN":
		return RoleAdmin, true
	default:
		return RoleNone, false
	}
}

// Key is the resource-table key of the role, also used in templates.
func (r Role) Key() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleSeller:
		return "seller"
	case RoleAdmin:
		return "admin"
	case RoleNone:
		return "guest"
	}
	return "guest"
}

func (r Role) String() string { return r.Key() }

// HasSellerExtension reports whether the role owns a seller profile.
func (r Role) HasSellerExtension() bool {
	return r == RoleSeller
}
