package api

import (
	"net/http" // HTTP status codes

	"simpleshop/internal/port"    // Repository ports
	"simpleshop/internal/service" // Order service

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Currency amounts
)

// PlaceOrderRequest is the order placement payload
type PlaceOrderRequest struct {
	Total decimal.Decimal       `json:"total"` // Declared order total
	Items []service.ItemRequest `json:"items"` // Requested (product, quantity) pairs
}

// StatusUpdateRequest names the target order status
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"` // Target status label
}

// PlaceOrderHandler places an order for the authenticated caller
func PlaceOrderHandler(orders *service.OrderService, users port.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentUser(c, users)
		if !ok {
			return
		}
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		order, err := orders.PlaceOrder(c.Request.Context(), actor, req.Total, req.Items)
		if err != nil {
			writeError(c, err)
			return
		}
		// Stock changed, drop the cached catalog entries
		touched := make([]uint, len(order.Items))
		for i, it := range order.Items {
			touched[i] = it.ProductID
		}
		invalidateProductCache(rdb, touched...)
		c.JSON(http.StatusCreated, toOrderResponse(order))
	}
}

// GetOrderHandler returns one order, visible to its owner or an admin
func GetOrderHandler(orders *service.OrderService, users port.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentUser(c, users)
		if !ok {
			return
		}
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		order, err := orders.GetOrder(c.Request.Context(), actor, id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(order))
	}
}

// ListUserOrdersHandler returns the caller's orders, most recent first
func ListUserOrdersHandler(orders *service.OrderService, users port.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentUser(c, users)
		if !ok {
			return
		}
		list, err := orders.ListUserOrders(c.Request.Context(), actor)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponses(list))
	}
}

// ListAllOrdersHandler returns every order (admin only)
func ListAllOrdersHandler(orders *service.OrderService, users port.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentUser(c, users)
		if !ok {
			return
		}
		list, err := orders.ListAllOrders(c.Request.Context(), actor)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponses(list))
	}
}

// UpdateOrderStatusHandler transitions an order's status (admin only)
func UpdateOrderStatusHandler(orders *service.OrderService, users port.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentUser(c, users)
		if !ok {
			return
		}
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req StatusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		order, err := orders.UpdateStatus(c.Request.Context(), actor, id, req.Status)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(order))
	}
}
