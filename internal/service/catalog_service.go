package service

import (
	"context"

	"simpleshop/internal/domain"
	"simpleshop/internal/port"
)

// CatalogService exposes catalog reads to everyone and catalog
// mutations to privileged callers.
type CatalogService struct {
	products port.ProductRepository
}

func NewCatalogService(products port.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.products.ListByCategory(ctx, category)
}

func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.products.Search(ctx, query)
}

func (s *CatalogService) Create(ctx context.Context, actor *domain.User, p *domain.Product) (*domain.Product, error) {
	if !domain.CanPerform(actor, domain.OpManageCatalog) {
		return nil, domain.ErrForbidden
	}
	if !p.Valid() {
		return nil, domain.ErrInvalidProduct
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces every catalog field of an existing product.
func (s *CatalogService) Update(ctx context.Context, actor *domain.User, id uint, p *domain.Product) (*domain.Product, error) {
	if !domain.CanPerform(actor, domain.OpManageCatalog) {
		return nil, domain.ErrForbidden
	}
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = p.Name
	existing.Description = p.Description
	existing.Price = p.Price
	existing.ImageURL = p.ImageURL
	existing.Category = p.Category
	existing.Stock = p.Stock
	if !existing.Valid() {
		return nil, domain.ErrInvalidProduct
	}
	if err := s.products.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a product from the catalog. Historical order items
// keep their own price and product reference, so they survive intact.
func (s *CatalogService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if !domain.CanPerform(actor, domain.OpManageCatalog) {
		return domain.ErrForbidden
	}
	return s.products.Delete(ctx, id)
}
