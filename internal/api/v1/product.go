package v1

import (
	"github.com/aevon-lab/salescope/internal/catalog"
	"github.com/aevon-lab/salescope/internal/core/sales"
)

// DefaultLowStockThreshold applies when a new product omits low_stock_threshold.
const DefaultLowStockThreshold = 10

// ProductInput is the request body for creating a product.
// The server assigns the ID.
type ProductInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`

	// Price accepts a JSON number or a decimal string ("19.99").
	Price interface{} `json:"price"`

	Stock int `json:"stock"`

	// LowStockThreshold is optional; nil means DefaultLowStockThreshold.
	LowStockThreshold *int `json:"low_stock_threshold,omitempty"`
}

// Validate checks the input and converts it to a product with ID 0.
// Errors wrap sales.ErrInvalidArgument.
func (in *ProductInput) Validate() (sales.Product, error) {
	threshold := DefaultLowStockThreshold
	if in.LowStockThreshold != nil {
		threshold = *in.LowStockThreshold
	}

	p := sales.Product{
		Name:              in.Name,
		Category:          in.Category,
		Stock:             in.Stock,
		Description:       in.Description,
		LowStockThreshold: threshold,
	}
	if err := catalog.ValidateProduct(&p, in.Price); err != nil {
		return sales.Product{}, err
	}
	return p, nil
}

// StockUpdate is the request body for setting a product's stock level.
type StockUpdate struct {
	Stock *int `json:"stock"`
}

// Validate ensures stock is present and non-negative.
func (u *StockUpdate) Validate() error {
	if u.Stock == nil {
		return sales.InvalidArgumentf("stock is required")
	}
	if *u.Stock < 0 {
		return sales.InvalidArgumentf("stock must be >= 0")
	}
	return nil
}
