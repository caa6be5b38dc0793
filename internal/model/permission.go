package model

// Permission is a console capability granted to an admin account.
type Permission string

const (
	PermissionEntitiesRead      Permission = "entities:read"
	PermissionEntitiesWrite     Permission = "entities:write"
	PermissionAuditRead         Permission = "audit:read"
	PermissionSettingsWrite     Permission = "settings:write"
	PermissionCredentialsReveal Permission = "credentials:reveal"
)

// AllPermissions lists every known permission, used by create-admin to
// grant a full set by default.
var AllPermissions = []Permission{
	PermissionEntitiesRead,
	PermissionEntitiesWrite,
	PermissionAuditRead,
	PermissionSettingsWrite,
	PermissionCredentialsReveal,
}
