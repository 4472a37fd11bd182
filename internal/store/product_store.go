package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"simpleshop/internal/domain"
)

// ProductStore is the GORM-backed catalog store.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", domain.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	return &p, nil
}

func (s *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductStore) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.WithContext(ctx).Where("category = ?", category).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return products, nil
}

func (s *ProductStore) Search(ctx context.Context, query string) ([]domain.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var products []domain.Product
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

func (s *ProductStore) Create(ctx context.Context, p *domain.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *ProductStore) Update(ctx context.Context, p *domain.Product) error {
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", domain.ErrProductNotFound, id)
	}
	return nil
}
