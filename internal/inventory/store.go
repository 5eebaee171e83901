package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	v1 "github.com/aevon-lab/salescope/internal/api/v1"
	"github.com/aevon-lab/salescope/internal/catalog"
	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/aevon-lab/salescope/internal/core/storage"
)

// SalesGenerator produces a fresh sales dataset for the given products.
type SalesGenerator interface {
	Generate(products []sales.Product) []sales.SaleRecord
}

// Summary is the headline figures shown above the dashboard charts.
type Summary struct {
	TotalRevenue  string `json:"total_revenue"` // two decimals, e.g. "30.40"
	TotalOrders   int64  `json:"total_orders"`
	ProductCount  int    `json:"product_count"`
	LowStockCount int    `json:"low_stock_count"`
	CategoryCount int    `json:"category_count"`
}

// Store owns the products, categories and sales dataset.
// Products and sales live in the repository; the category list is kept in
// memory and grows when a product introduces a new category.
type Store struct {
	repo      storage.Repository
	generator SalesGenerator

	mu         sync.RWMutex
	categories []string
}

// NewStore creates a store over repo. categories seeds the category list.
func NewStore(repo storage.Repository, generator SalesGenerator, categories []string) *Store {
	if repo == nil {
		panic("inventory: repository must not be nil")
	}
	if generator == nil {
		panic("inventory: generator must not be nil")
	}
	return &Store{
		repo:       repo,
		generator:  generator,
		categories: append([]string(nil), categories...),
	}
}

// Bootstrap seeds the repository with cat's products and generates an
// initial sales dataset when none is stored yet.
func (s *Store) Bootstrap(ctx context.Context, cat catalog.Catalog) error {
	if err := s.repo.SeedProducts(ctx, cat.Products); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	for _, p := range products {
		s.addCategory(p.Category)
	}

	existing, err := s.repo.ListSales(ctx)
	if err != nil {
		return fmt.Errorf("list sales: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("Reusing stored sales dataset", "records", len(existing))
		return nil
	}

	n, err := s.RegenerateSales(ctx)
	if err != nil {
		return err
	}
	slog.Info("Generated initial sales dataset", "records", n, "products", len(products))
	return nil
}

// Products returns all products ordered by ID.
func (s *Store) Products(ctx context.Context) ([]sales.Product, error) {
	return s.repo.ListProducts(ctx)
}

// Categories returns a copy of the category list.
func (s *Store) Categories(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.categories...)
}

// Sales returns a snapshot of the sales dataset.
func (s *Store) Sales(ctx context.Context) ([]sales.SaleRecord, error) {
	return s.repo.ListSales(ctx)
}

// AddProduct validates in and stores it under the next free ID.
func (s *Store) AddProduct(ctx context.Context, in v1.ProductInput) (sales.Product, error) {
	p, err := in.Validate()
	if err != nil {
		return sales.Product{}, err
	}
	if err := s.repo.CreateProduct(ctx, &p); err != nil {
		return sales.Product{}, fmt.Errorf("create product: %w", err)
	}
	s.addCategory(p.Category)

	slog.Info("Product added", "product_id", p.ID, "name", p.Name, "category", p.Category)
	return p, nil
}

// UpdateProductStock sets a product's stock level.
// Returns storage.ErrProductNotFound for an unknown ID and an
// sales.ErrInvalidArgument error for a negative stock.
func (s *Store) UpdateProductStock(ctx context.Context, id int, stock int) error {
	if stock < 0 {
		return sales.InvalidArgumentf("stock must be >= 0")
	}
	if err := s.repo.UpdateStock(ctx, id, stock); err != nil {
		return err
	}
	slog.Info("Product stock updated", "product_id", id, "stock", stock)
	return nil
}

// RegenerateSales replaces the sales dataset with a fresh generator run over
// the current products. It returns the number of records written.
func (s *Store) RegenerateSales(ctx context.Context) (int, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}

	records := s.generator.Generate(products)
	if err := s.repo.ReplaceSales(ctx, records); err != nil {
		return 0, fmt.Errorf("replace sales: %w", err)
	}
	return len(records), nil
}

// LowStockProducts returns products at or below their threshold.
func (s *Store) LowStockProducts(ctx context.Context) ([]sales.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return sales.LowStockProducts(products), nil
}

// Summary computes the headline figures from one products and one sales snapshot.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list products: %w", err)
	}
	records, err := s.repo.ListSales(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list sales: %w", err)
	}

	return Summary{
		TotalRevenue:  sales.FormatAmount(sales.TotalRevenue(records)),
		TotalOrders:   sales.TotalOrders(records),
		ProductCount:  len(products),
		LowStockCount: len(sales.LowStockProducts(products)),
		CategoryCount: len(s.Categories(ctx)),
	}, nil
}

// Ping reports whether the backing repository is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *Store) addCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c == name {
			return
		}
	}
	s.categories = append(s.categories, name)
}
