package storage

import (
	"context"
	"errors"

	"github.com/aevon-lab/salescope/internal/core/sales"
)

var (
	// ErrProductNotFound is returned when no product has the requested ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicate is returned when a product ID is already taken.
	ErrDuplicate = errors.New("product already exists")
)

// ProductStore holds the product catalog and stock levels.
type ProductStore interface {
	// ListProducts returns all products ordered by ID.
	ListProducts(ctx context.Context) ([]sales.Product, error)

	// GetProduct returns one product or ErrProductNotFound.
	GetProduct(ctx context.Context, id int) (*sales.Product, error)

	// CreateProduct assigns the next free ID to p and stores it.
	CreateProduct(ctx context.Context, p *sales.Product) error

	// SeedProducts stores products with their existing IDs, skipping any ID
	// that is already present. Used to load the catalog at startup.
	SeedProducts(ctx context.Context, products []sales.Product) error

	// UpdateStock sets the stock level of one product.
	// Returns ErrProductNotFound for an unknown ID.
	UpdateStock(ctx context.Context, id int, stock int) error
}

// SalesStore holds the sales dataset the dashboard aggregates over.
type SalesStore interface {
	// ListSales returns a snapshot of all sale records ordered by date.
	// Callers own the returned slice.
	ListSales(ctx context.Context) ([]sales.SaleRecord, error)

	// ReplaceSales swaps the whole dataset atomically.
	ReplaceSales(ctx context.Context, records []sales.SaleRecord) error
}

// Repository is the full storage surface used by the inventory store.
type Repository interface {
	ProductStore
	SalesStore

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
