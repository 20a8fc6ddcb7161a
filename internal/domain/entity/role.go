// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the permission level of an account.
type Role string

const (
	// RoleCustomer indicates a regular customer account.
	RoleCustomer Role = "customer"
	// RoleMerchant indicates an account operating a merchant storefront.
	RoleMerchant Role = "merchant"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleMerchant, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
