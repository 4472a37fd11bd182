package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"simpleshop/internal/domain"
)

// OrderStore is the GORM-backed order ledger.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create inserts the order shell and its items, then applies a guarded
// conditional decrement per line. The guard (stock >= quantity) is checked
// and applied atomically at the database, so two concurrent orders can
// never both take the last unit; the loser rolls back whole.
func (s *OrderStore) Create(ctx context.Context, order *domain.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		for i := range order.Items {
			it := &order.Items[i]
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND stock >= ?", it.ProductID, it.Quantity).
				Update("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return fmt.Errorf("decrement stock: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %d", domain.ErrInsufficientStock, it.ProductID)
			}
		}
		return nil
	})
}

func (s *OrderStore) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var o domain.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("User").
		First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", domain.ErrOrderNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if err := s.resolveDisplayFields(ctx, []*domain.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if err := s.resolveDisplayFields(ctx, refs(orders)); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) ListAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if err := s.resolveDisplayFields(ctx, refs(orders)); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", domain.ErrOrderNotFound, id)
	}
	return nil
}

// resolveDisplayFields fills the transient product name/image fields on
// every line item from the current catalog in one query. Items whose
// product has since been deleted keep blank display fields.
func (s *OrderStore) resolveDisplayFields(ctx context.Context, orders []*domain.Order) error {
	ids := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, o := range orders {
		for _, it := range o.Items {
			if !seen[it.ProductID] {
				seen[it.ProductID] = true
				ids = append(ids, it.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}
	var products []domain.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return fmt.Errorf("resolve order items: %w", err)
	}
	byID := make(map[uint]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, o := range orders {
		for i := range o.Items {
			if p, ok := byID[o.Items[i].ProductID]; ok {
				o.Items[i].ProductName = p.Name
				o.Items[i].ProductImageURL = p.ImageURL
			}
		}
	}
	return nil
}

func refs(orders []domain.Order) []*domain.Order {
	out := make([]*domain.Order, len(orders))
	for i := range orders {
		out[i] = &orders[i]
	}
	return out
}
