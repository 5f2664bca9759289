// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have on the host site.
type Role string

const (
	// RoleAdministrator has every capability.
	RoleAdministrator Role = "administrator"
	// RoleShopManager is an elevated role that passes every capability check.
	RoleShopManager Role = "shop_manager"
	// RoleEditor is an elevated role that passes every capability check.
	RoleEditor Role = "editor"
	// RoleCustomer is the default role of accounts registered through chat login.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleShopManager, RoleEditor, RoleCustomer:
		return true
	default:
		return false
	}
}

// IsElevated reports whether the role bypasses capability lookups.
func (r Role) IsElevated() bool {
	return r == RoleShopManager || r == RoleEditor
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
