package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/aevon-lab/salescope/internal/core/storage"
)

// Repository is an in-memory implementation of storage.Repository.
// It is the default backend and the one used in tests.
type Repository struct {
	mu       sync.RWMutex
	products map[int]sales.Product
	sales    []sales.SaleRecord
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		products: make(map[int]sales.Product),
	}
}

func (r *Repository) ListProducts(ctx context.Context) ([]sales.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sales.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repository) GetProduct(ctx context.Context, id int) (*sales.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.products[id]
	if !exists {
		return nil, storage.ErrProductNotFound
	}
	return &p, nil
}

func (r *Repository) CreateProduct(ctx context.Context, p *sales.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := 1
	for id := range r.products {
		if id >= next {
			next = id + 1
		}
	}
	p.ID = next
	r.products[next] = *p
	return nil
}

func (r *Repository) SeedProducts(ctx context.Context, products []sales.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		if _, exists := r.products[p.ID]; exists {
			continue
		}
		r.products[p.ID] = p
	}
	return nil
}

func (r *Repository) UpdateStock(ctx context.Context, id int, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.products[id]
	if !exists {
		return storage.ErrProductNotFound
	}
	p.Stock = stock
	r.products[id] = p
	return nil
}

func (r *Repository) ListSales(ctx context.Context) ([]sales.SaleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Copy so callers can aggregate while the dataset is being replaced.
	out := make([]sales.SaleRecord, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

func (r *Repository) ReplaceSales(ctx context.Context, records []sales.SaleRecord) error {
	next := make([]sales.SaleRecord, len(records))
	copy(next, records)
	sort.SliceStable(next, func(i, j int) bool { return next[i].Date.Before(next[j].Date) })

	r.mu.Lock()
	r.sales = next
	r.mu.Unlock()
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return ctx.Err()
}

var _ storage.Repository = (*Repository)(nil)
