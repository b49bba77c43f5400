package entity

// Role is the closed set of authenticated actor kinds.
type Role string

const (
	RoleUser       Role = "user"
	RoleShop       Role = "shop"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Principal is the verified caller identity extracted from the request
// credential by the auth middleware.
type Principal struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (p Principal) Is(roles ...Role) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

// ValidRecipientType reports whether a notification recipient kind is one
// of the three known kinds. Broadcast admin notifications carry no
// recipient id.
func ValidRecipientType(recipientType string) bool {
	switch Role(recipientType) {
	case RoleUser, RoleShop, RoleAdmin:
		return true
	}
	return false
}
