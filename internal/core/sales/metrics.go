package sales

import "github.com/shopspring/decimal"

// LowStockProducts returns products whose stock is at or below their threshold,
// preserving input order.
func LowStockProducts(products []Product) []Product {
	out := make([]Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// TotalRevenue sums revenue over all records with exact decimal arithmetic.
func TotalRevenue(records []SaleRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Revenue)
	}
	return total
}

// TotalOrders sums quantity over all records.
func TotalOrders(records []SaleRecord) int64 {
	var total int64
	for _, r := range records {
		total += r.Quantity
	}
	return total
}

// FormatAmount renders an amount with exactly two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
