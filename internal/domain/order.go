package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the lifecycle of an order
type OrderStatus string

// Order statuses, in lifecycle order
const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
)

// statusRank orders the statuses for forward-only transition checks
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

// ParseOrderStatus maps a status label to its enum value.
// Unknown labels fail with ErrInvalidStatus.
func ParseOrderStatus(label string) (OrderStatus, error) {
	s := OrderStatus(label)
	if _, ok := statusRank[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, label)
	}
	return s, nil
}

// CanTransitionTo reports whether moving to next is a legal transition.
// Transitions are forward-only; skipping ahead is allowed, moving
// backward is not. A no-op transition is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return statusRank[next] >= statusRank[s]
}

// Order Model
type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                                      // Primary key
	UserID    uint            `gorm:"not null;index" json:"userId"`                              // Owning user
	User      User            `gorm:"constraint:OnUpdate:CASCADE" json:"-"`                      // Owner, loaded explicitly
	Items     []OrderItem     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"` // Line items, cascade-owned
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`                  // Declared order total
	Status    OrderStatus     `gorm:"type:varchar(16);not null;default:PENDING" json:"status"`   // Lifecycle status
	CreatedAt time.Time       `json:"createdAt"`                                                 // Set on insert
	UpdatedAt time.Time       `json:"updatedAt"`                                                 // Set on update
}

// OrderItem is one product/quantity/price line within an order.
// Price snapshots the product's unit price at purchase time and never
// changes afterward. ProductID is a plain reference with no foreign key
// so deleting a product never corrupts historical orders.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"-"`
	ProductID uint            `gorm:"not null" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	// Display fields resolved at load time from the current catalog.
	// Left blank when the product no longer exists.
	ProductName     string `gorm:"-" json:"productName"`
	ProductImageURL string `gorm:"-" json:"productImageUrl"`
}
