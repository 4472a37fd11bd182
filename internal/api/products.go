package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing
	"time"     // Cache TTLs

	"simpleshop/internal/domain"  // Domain models
	"simpleshop/internal/port"    // Repository ports
	"simpleshop/internal/service" // Catalog service
	"simpleshop/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Currency amounts
)

// Catalog reads are cached for a short window and invalidated whenever
// a product mutates (admin edit or stock decrement on order placement).
const catalogCacheTTL = 60 * time.Second

// ProductRequest is the catalog mutation payload
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"` // Display name
	Description string          `json:"description"`             // Free-text description
	Price       decimal.Decimal `json:"price"`                   // Unit price
	ImageURL    string          `json:"imageUrl"`                // Image location
	Category    string          `json:"category"`                // Category label
	Stock       int             `json:"stock"`                   // Inventory count
}

// toProduct maps the payload to a catalog record
func (r *ProductRequest) toProduct() *domain.Product {
	return &domain.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Stock:       r.Stock,
	}
}

// parseID reads a numeric path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// invalidateProductCache drops the cached catalog entries touched by a mutation
func invalidateProductCache(rdb *redis.Client, ids ...uint) {
	ctx := context.Background()
	keys := []string{"products:all"}
	for _, id := range ids {
		keys = append(keys, "product:"+strconv.Itoa(int(id)))
	}
	_ = utils.DeleteCache(ctx, rdb, keys...)
}

// ListProductsHandler returns the full catalog
func ListProductsHandler(catalog *service.CatalogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var products []domain.Product
		found, err := utils.GetCache(ctx, rdb, "products:all", &products)
		if err == nil && found {
			c.JSON(http.StatusOK, products) // Served from cache
			return
		}
		products, err = catalog.List(ctx)
		if err != nil {
			writeError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, "products:all", products, catalogCacheTTL)
		c.JSON(http.StatusOK, products)
	}
}

// GetProductHandler returns one product by id
func GetProductHandler(catalog *service.CatalogService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		ctx := c.Request.Context()
		cacheKey := "product:" + strconv.Itoa(int(id))
		var product domain.Product
		found, err := utils.GetCache(ctx, rdb, cacheKey, &product)
		if err == nil && found {
			c.JSON(http.StatusOK, product) // Served from cache
			return
		}
		p, err := catalog.Get(ctx, id)
		if err != nil {
			writeError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, p, catalogCacheTTL)
		c.JSON(http.StatusOK, p)
	}
}

// ListByCategoryHandler returns products matching the category exactly
func ListByCategoryHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// SearchProductsHandler returns products whose name or description
// contains the query, case-insensitively
func SearchProductsHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
			return
		}
		products, err := catalog.Search(c.Request.Context(), q)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// CreateProductHandler adds a product to the catalog (admin only)
func CreateProductHandler(catalog *service.CatalogService, users port.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentUser(c, users)
		if !ok {
			return
		}
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		p, err := catalog.Create(c.Request.Context(), actor, req.toProduct())
		if err != nil {
			writeError(c, err)
			return
		}
		invalidateProductCache(rdb)
		c.JSON(http.StatusCreated, p)
	}
}

// UpdateProductHandler replaces a product's catalog fields (admin only)
func UpdateProductHandler(catalog *service.CatalogService, users port.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentUser(c, users)
		if !ok {
			return
		}
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		p, err := catalog.Update(c.Request.Context(), actor, id, req.toProduct())
		if err != nil {
			writeError(c, err)
			return
		}
		invalidateProductCache(rdb, id)
		c.JSON(http.StatusOK, p)
	}
}

// DeleteProductHandler removes a product from the catalog (admin only).
// Historical order line items keep their own price snapshot and survive.
func DeleteProductHandler(catalog *service.CatalogService, users port.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentUser(c, users)
		if !ok {
			return
		}
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := catalog.Delete(c.Request.Context(), actor, id); err != nil {
			writeError(c, err)
			return
		}
		invalidateProductCache(rdb, id)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
