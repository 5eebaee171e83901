package inventory

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	v1 "github.com/aevon-lab/salescope/internal/api/v1"
	httperr "github.com/aevon-lab/salescope/internal/core/errors"
	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/aevon-lab/salescope/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidJSON      = "Invalid JSON body"
	msgInvalidProductID = "Invalid product id"
	msgProductNotFound  = "Product not found"
)

// RegisterRoutes registers the inventory routes.
func (s *Store) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/products", s.HandleListProducts)
	r.POST("/v1/products", s.HandleAddProduct)
	r.GET("/v1/products/low-stock", s.HandleLowStock)
	r.PATCH("/v1/products/:id/stock", s.HandleUpdateStock)
	r.GET("/v1/categories", s.HandleListCategories)
	r.POST("/v1/sales/regenerate", s.HandleRegenerateSales)
}

// HandleListProducts handles GET /v1/products
func (s *Store) HandleListProducts(c *gin.Context) {
	products, err := s.Products(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// HandleAddProduct handles POST /v1/products
func (s *Store) HandleAddProduct(c *gin.Context) {
	var in v1.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		slog.Warn("Invalid product body received", "error", err)
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   msgInvalidJSON,
		})
		return
	}

	p, err := s.AddProduct(c.Request.Context(), in)
	if err != nil {
		writeStoreError(c, err, "Failed to add product")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// HandleLowStock handles GET /v1/products/low-stock
func (s *Store) HandleLowStock(c *gin.Context) {
	products, err := s.LowStockProducts(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "Failed to list low-stock products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// HandleUpdateStock handles PATCH /v1/products/:id/stock
// Body: {"stock": 12}
func (s *Store) HandleUpdateStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidArgumentError,
			Message:   msgInvalidProductID,
			Details:   c.Param("id"),
		})
		return
	}

	var body v1.StockUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   msgInvalidJSON,
		})
		return
	}
	if err := body.Validate(); err != nil {
		writeStoreError(c, err, "")
		return
	}

	if err := s.UpdateProductStock(c.Request.Context(), id, *body.Stock); err != nil {
		writeStoreError(c, err, "Failed to update stock")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "stock": *body.Stock})
}

// HandleListCategories handles GET /v1/categories
func (s *Store) HandleListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.Categories(c.Request.Context())})
}

// HandleRegenerateSales handles POST /v1/sales/regenerate
func (s *Store) HandleRegenerateSales(c *gin.Context) {
	n, err := s.RegenerateSales(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "Failed to regenerate sales data")
		return
	}
	slog.Info("Sales dataset regenerated on request", "records", n)
	c.JSON(http.StatusOK, gin.H{"status": "regenerated", "records": n})
}

// writeStoreError maps store errors onto HTTP responses: invalid arguments are
// 400, unknown products 404, anything else 500 with internalMsg.
func writeStoreError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, sales.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidArgumentError,
			Message:   err.Error(),
		})
	case errors.Is(err, storage.ErrProductNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   msgProductNotFound,
		})
	default:
		slog.Error(internalMsg, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   internalMsg,
		})
	}
}
