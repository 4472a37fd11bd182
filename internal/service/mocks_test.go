package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"simpleshop/internal/domain"
)

// In-memory fakes of the repository ports. Both are mutex-guarded and the
// order fake applies its decrements all-or-nothing, mirroring the atomic
// guarantees of the real transactional store.

type memProductRepo struct {
	mu       sync.Mutex
	products map[uint]*domain.Product
	nextID   uint
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uint]*domain.Product)}
}

func (m *memProductRepo) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrProductNotFound, id)
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProductRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Product
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProductRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProductRepo) Create(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) Update(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[p.ID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrProductNotFound, p.ID)
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrProductNotFound, id)
	}
	delete(m.products, id)
	return nil
}

// stock reads the live stock count without copying
func (m *memProductRepo) stock(id uint) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Stock
}

type memOrderRepo struct {
	mu       sync.Mutex
	products *memProductRepo
	orders   map[uint]*domain.Order
	nextID   uint
	nextItem uint
}

func newMemOrderRepo(products *memProductRepo) *memOrderRepo {
	return &memOrderRepo{products: products, orders: make(map[uint]*domain.Order)}
}

func (m *memOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products.mu.Lock()
	defer m.products.mu.Unlock()

	// Guarded decrements; roll back fully on the first failing item.
	applied := make([]domain.OrderItem, 0, len(order.Items))
	for _, it := range order.Items {
		p, ok := m.products.products[it.ProductID]
		if !ok || p.Stock < it.Quantity {
			for _, a := range applied {
				m.products.products[a.ProductID].Stock += a.Quantity
			}
			return fmt.Errorf("%w: product %d", domain.ErrInsufficientStock, it.ProductID)
		}
		p.Stock -= it.Quantity
		applied = append(applied, it)
	}

	m.nextID++
	order.ID = m.nextID
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		m.nextItem++
		order.Items[i].ID = m.nextItem
		order.Items[i].OrderID = order.ID
	}
	m.orders[order.ID] = cloneOrder(order)
	return nil
}

func (m *memOrderRepo) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrOrderNotFound, id)
	}
	cp := cloneOrder(o)
	m.resolveDisplayFields(cp)
	return cp, nil
}

func (m *memOrderRepo) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			cp := cloneOrder(o)
			m.resolveDisplayFields(cp)
			out = append(out, *cp)
		}
	}
	sortOrdersDesc(out)
	return out, nil
}

func (m *memOrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, o := range m.orders {
		cp := cloneOrder(o)
		m.resolveDisplayFields(cp)
		out = append(out, *cp)
	}
	sortOrdersDesc(out)
	return out, nil
}

func (m *memOrderRepo) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrOrderNotFound, id)
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

func (m *memOrderRepo) resolveDisplayFields(o *domain.Order) {
	m.products.mu.Lock()
	defer m.products.mu.Unlock()
	for i := range o.Items {
		if p, ok := m.products.products[o.Items[i].ProductID]; ok {
			o.Items[i].ProductName = p.Name
			o.Items[i].ProductImageURL = p.ImageURL
		}
	}
}

func cloneOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Items = make([]domain.OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	return &cp
}

func sortOrdersDesc(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
}
