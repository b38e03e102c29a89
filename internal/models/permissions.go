package models

// Application permissions
const (
	// Owner permissions, the single administrative capability. Rate
	// configuration and fee withdrawal are gated on fees:admin.
	PermissionFeeAdmin  = "fees:admin"
	PermissionAuditRead = "audit:read"

	// Integrator permissions
	PermissionBridgeSend = "bridge:send"
	PermissionFeeRead    = "fees:read"
)

// GetDefaultPermissions returns default permissions based on role.
func GetDefaultPermissions(role string) []string {
	switch role {
	case "owner":
		return []string{
			PermissionFeeAdmin,
			PermissionAuditRead,
			PermissionBridgeSend,
			PermissionFeeRead,
		}
	case "integrator":
		return []string{
			PermissionBridgeSend,
			PermissionFeeRead,
		}
	default:
		return []string{}
	}
}
