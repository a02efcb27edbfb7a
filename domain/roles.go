package domain

// Role tags assignable to users. ADMIN and SYSTEM are virtual
// capabilities: they are never stored on a user and are satisfied only
// through SUPER_ADMIN.
const (
	RoleUser             = "USER"
	RoleMember           = "MEMBER"
	RoleSoloProvider     = "SOLO_PROVIDER"
	RoleBusinessProvider = "BUSINESS_PROVIDER"
	RoleLocationProvider = "LOCATION_PROVIDER"
	RoleSuperAdmin       = "SUPER_ADMIN"
	RoleAdmin            = "ADMIN"
	RoleSystem           = "SYSTEM"
)

var knownRoles = map[string]struct{}{
	RoleUser:             {},
	RoleMember:           {},
	RoleSoloProvider:     {},
	RoleBusinessProvider: {},
	RoleLocationProvider: {},
	RoleSuperAdmin:       {},
	RoleAdmin:            {},
	RoleSystem:           {},
}

// KnownRole reports whether tag belongs to the closed role enumeration.
// Role checks against unknown tags are denied.
func KnownRole(tag string) bool {
	_, ok := knownRoles[tag]
	return ok
}

// HasTag reports whether roles contains tag.
func HasTag(roles []string, tag string) bool {
	for _, r := range roles {
		if r == tag {
			return true
		}
	}
	return false
}
