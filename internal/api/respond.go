package api

import (
	"errors"   // Sentinel matching
	"net/http" // HTTP status codes
	"time"     // DTO timestamps

	"simpleshop/internal/domain" // Domain models
	"simpleshop/internal/port"   // Repository ports

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Currency amounts
	"github.com/sirupsen/logrus"    // Logging library
)

// OrderResponse is the wire shape of an order
type OrderResponse struct {
	ID        uint                `json:"id"`
	UserID    uint                `json:"userId"`
	Username  string              `json:"username"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	Items     []OrderItemResponse `json:"items"`
}

// OrderItemResponse is the wire shape of one line item
type OrderItemResponse struct {
	ID              uint            `json:"id"`
	ProductID       uint            `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductImageURL string          `json:"productImageUrl"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
}

// toOrderResponse maps a materialized order aggregate to its wire shape
func toOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			ProductImageURL: it.ProductImageURL,
			Quantity:        it.Quantity,
			Price:           it.Price,
		}
	}
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Username:  o.User.Username,
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		Items:     items,
	}
}

// toOrderResponses maps a slice of orders
func toOrderResponses(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out
}

// currentUser loads the authenticated caller's account. A missing or
// stale account after successful token validation is an authentication
// inconsistency and is reported as unauthorized.
func currentUser(c *gin.Context, users port.UserRepository) (*domain.User, bool) {
	userID, exists := c.Get("userID") // Set by the JWT middleware
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	user, err := users.GetByID(c.Request.Context(), userID.(uint))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
		return nil, false
	}
	return user, true
}

// writeError maps each error kind of the domain taxonomy to a distinct
// response status category
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrStatusTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidProduct):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
