// Package entity contains the core business objects of the project.
package entity

// Role is the marketplace role a user registers with.
type Role string

const (
	// RoleCustomer buys products and places orders.
	RoleCustomer Role = "customer"
	// RoleWeaver lists handwoven products.
	RoleWeaver Role = "weaver"
	// RoleDesigner lists designed products.
	RoleDesigner Role = "designer"
	// RoleAdmin administers the marketplace.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleWeaver, RoleDesigner, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSeller reports whether the role may list products and receives orders as a seller.
func (r Role) IsSeller() bool {
	return r == RoleWeaver || r == RoleDesigner
}

// IsSelfRegistrable reports whether a new account may choose this role at sign-up.
func (r Role) IsSelfRegistrable() bool {
	return r == RoleCustomer || r.IsSeller()
}
