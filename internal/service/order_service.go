package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"simpleshop/internal/domain"
	"simpleshop/internal/port"
)

// ItemRequest is one (product, quantity) pair of a placement request.
type ItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// OrderService implements order placement, queries and status
// transitions over the repository ports.
type OrderService struct {
	orders   port.OrderRepository
	products port.ProductRepository
}

func NewOrderService(orders port.OrderRepository, products port.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// PlaceOrder validates the requested items, snapshots current unit
// prices, and commits the order together with all stock decrements in a
// single transaction. The effect is all-or-nothing: a failing item
// leaves no order and no stock change behind.
func (s *OrderService) PlaceOrder(ctx context.Context, user *domain.User, total decimal.Decimal, items []ItemRequest) (*domain.Order, error) {
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	order := &domain.Order{
		UserID: user.ID,
		Status: domain.OrderStatusPending,
		Total:  total,
	}
	for _, req := range items {
		if req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %d", domain.ErrInvalidQuantity, req.ProductID)
		}
		product, err := s.products.GetByID(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		// Fail fast with a precise product id. The transactional guard
		// in the store remains authoritative under concurrency.
		if product.Stock < req.Quantity {
			return nil, fmt.Errorf("%w: product %d", domain.ErrInsufficientStock, product.ID)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: product.ID,
			Quantity:  req.Quantity,
			Price:     product.Price,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  user.ID,
		"items":    len(order.Items),
		"total":    order.Total.String(),
	}).Info("Order placed")

	return s.orders.GetByID(ctx, order.ID)
}

// GetOrder returns an order visible only to its owner or a privileged
// caller. Authorization failure is reported distinctly from not-found.
func (s *OrderService) GetOrder(ctx context.Context, actor *domain.User, id uint) (*domain.Order, error) {
	if actor == nil {
		return nil, domain.ErrUserNotFound
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.ID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// ListUserOrders returns the caller's orders, most recent first.
func (s *OrderService) ListUserOrders(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	if actor == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.orders.ListByUser(ctx, actor.ID)
}

// ListAllOrders returns every order; privileged callers only.
func (s *OrderService) ListAllOrders(ctx context.Context, actor *domain.User) ([]domain.Order, error) {
	if !domain.CanPerform(actor, domain.OpListAllOrders) {
		return nil, domain.ErrForbidden
	}
	return s.orders.ListAll(ctx)
}

// UpdateStatus moves an order to the status named by label; privileged
// callers only. Unknown labels fail with ErrInvalidStatus, backward
// moves with ErrStatusTransition. The item list is never touched.
func (s *OrderService) UpdateStatus(ctx context.Context, actor *domain.User, id uint, label string) (*domain.Order, error) {
	if !domain.CanPerform(actor, domain.OpUpdateOrderStatus) {
		return nil, domain.ErrForbidden
	}
	next, err := domain.ParseOrderStatus(label)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrStatusTransition, order.Status, next)
	}
	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": id,
		"from":     order.Status,
		"to":       next,
	}).Info("Order status updated")

	return s.orders.GetByID(ctx, id)
}
