package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is one product's sales for one day.
// Records are immutable once produced by a source; aggregation only reads them.
type SaleRecord struct {
	ID          string          `json:"id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"` // denormalized for display
	Category    string          `json:"category"`     // denormalized for grouping
	Date        time.Time       `json:"date"`         // day granularity; time of day is ignored
	Quantity    int64           `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"` // quantity × unit price at creation, not re-validated
}

// Product is a catalog entry with its current stock level.
type Product struct {
	ID                int             `json:"id" yaml:"id"`
	Name              string          `json:"name" yaml:"name"`
	Category          string          `json:"category" yaml:"category"`
	Price             decimal.Decimal `json:"price" yaml:"-"`
	Stock             int             `json:"stock" yaml:"stock"`
	Description       string          `json:"description" yaml:"description"`
	LowStockThreshold int             `json:"low_stock_threshold" yaml:"low_stock_threshold"`
}

// IsLowStock reports whether the product is at or below its threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
