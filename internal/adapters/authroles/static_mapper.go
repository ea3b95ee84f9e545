package authroles

import (
	domainauth "github.com/socialnet-labs/ui-api/internal/domain/auth"
)

// StaticRoleMapper maps identity-provider groups by simple string membership rules.
// Admin membership wins over user membership; anything else is a guest.
type StaticRoleMapper struct {
	AdminGroup string
	UserGroup  string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.UserGroup != "" && g == m.UserGroup {
			return domainauth.RoleUser
		}
	}
	return domainauth.RoleGuest
}
