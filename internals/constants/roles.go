package constants

import "fmt"

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
)

// Role error templates
const (
	ErrOnlySuperAdminCanAccess = "❌ Only superadmin may access %s."
	ErrOnlyAdminsCanAccess     = "❌ Only admin or superadmin may access %s."
	ErrOnlyStaffCanAccess      = "❌ Only staff accounts may access %s."
)

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleManager,
	}

	AdminAndAbove = []string{
		RoleSuperAdmin,
		RoleAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
