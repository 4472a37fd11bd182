package domain

import "github.com/shopspring/decimal"

// Product Model
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                     // Primary key
	Name        string          `gorm:"not null" json:"name"`                     // Display name
	Description string          `gorm:"type:text" json:"description"`             // Free-text description
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // Unit price, non-negative
	ImageURL    string          `gorm:"column:image_url" json:"imageUrl"`         // Image location
	Category    string          `gorm:"index" json:"category"`                    // Free-text category label
	Stock       int             `gorm:"not null;default:0" json:"stock"`          // Available inventory, non-negative
}

// Valid reports whether the product satisfies the catalog invariants
func (p *Product) Valid() bool {
	return p.Name != "" && !p.Price.IsNegative() && p.Stock >= 0
}
