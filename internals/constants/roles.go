package constants

import "fmt"

const (
	RoleAdmin    = "admin"
	AdminSubject = "admin"
)

// Template pesan error role
const ErrOnlyAdminsCanAccess = "❌ Only admins can access %s."

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var AdminOnly = []string{RoleAdmin}
