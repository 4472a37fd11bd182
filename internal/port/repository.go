package port

import (
	"context"

	"simpleshop/internal/domain"
)

type ProductRepository interface {
	// GetByID retrieves a product, failing with domain.ErrProductNotFound when absent
	GetByID(ctx context.Context, id uint) (*domain.Product, error)

	// List returns the full catalog
	List(ctx context.Context) ([]domain.Product, error)

	// ListByCategory returns products whose category matches exactly
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)

	// Search returns products whose name or description contains the
	// query, case-insensitively, unranked
	Search(ctx context.Context, query string) ([]domain.Product, error)

	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uint) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type OrderRepository interface {
	// Create persists the order, its line items and the guarded stock
	// decrements in a single transaction. Any item whose guard fails
	// aborts the whole order with domain.ErrInsufficientStock and no
	// stock change is retained.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID loads the fully materialized aggregate: order, items in
	// insertion order, owner, and item display fields resolved
	GetByID(ctx context.Context, id uint) (*domain.Order, error)

	// ListByUser returns a user's orders, most recent first
	ListByUser(ctx context.Context, userID uint) ([]domain.Order, error)

	// ListAll returns every order, most recent first
	ListAll(ctx context.Context) ([]domain.Order, error)

	UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error
}
