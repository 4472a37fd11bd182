package domain

import "strings"

// Role tags carried by a user account
const (
	RoleAdmin = "ADMIN" // May manage the catalog and all orders
	RoleUser  = "USER"  // Regular shopper
)

// Operation identifies a privileged action for capability checks
type Operation string

// Privileged operations
const (
	OpManageCatalog     Operation = "catalog:manage"       // Create/update/delete products
	OpListAllOrders     Operation = "orders:list-all"      // Cross-user order listing
	OpUpdateOrderStatus Operation = "orders:update-status" // Order status transitions
)

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`        // Primary key
	Username string `gorm:"unique;not null" json:"username"` // Unique username
	Email    string `gorm:"not null" json:"email"`       // Contact email
	Password string `gorm:"not null" json:"-"`           // Hashed password, never serialized
	Roles    string `gorm:"default:USER" json:"roles"`   // Comma-separated role tags, e.g. "ADMIN,USER"
}

// HasRole reports whether the user carries the given role tag
func (u *User) HasRole(role string) bool {
	for _, r := range strings.Split(u.Roles, ",") {
		if strings.TrimSpace(r) == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds the administrative role
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// CanPerform is the capability check consulted at the entry of every
// privileged operation, independent of the transport layer.
func CanPerform(u *User, op Operation) bool {
	if u == nil {
		return false
	}
	switch op {
	case OpManageCatalog, OpListAllOrders, OpUpdateOrderStatus:
		return u.IsAdmin()
	default:
		return true
	}
}
