package postgres

import (
	"fmt"
	"time"

	"github.com/aevon-lab/salescope/internal/core/sales"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanProductRow scans one products row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanProductRow(row scanner) (*sales.Product, error) {
	var p sales.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Price,
		&p.Stock,
		&p.Description,
		&p.LowStockThreshold,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanSaleRow(row scanner) (*sales.SaleRecord, error) {
	var r sales.SaleRecord
	err := row.Scan(
		&r.ID,
		&r.ProductID,
		&r.ProductName,
		&r.Category,
		&r.Date,
		&r.Quantity,
		&r.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale row: %w", err)
	}
	return &r, nil
}

// saleDate renders the record's calendar day in its own location.
// Passing a time.Time would let the driver shift it to UTC first, which moves
// late-evening sales in zones east of UTC onto the previous day.
func saleDate(t time.Time) string {
	return t.Format("2006-01-02")
}
