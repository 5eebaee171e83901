// Package catalog provides the product catalog the inventory starts from,
// either built in or loaded from a YAML file.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Catalog is the starting product list plus the category names offered for
// new products.
type Catalog struct {
	Categories []string
	Products   []sales.Product
}

// rawCatalog is the on-disk YAML shape.
// Prices are read loosely (number or string) and converted to decimals.
type rawCatalog struct {
	Categories []string     `yaml:"categories"`
	Products   []rawProduct `yaml:"products"`
}

type rawProduct struct {
	sales.Product `yaml:",inline"`
	Price         interface{} `yaml:"price"`
}

// Default returns the built-in catalog: ten products across five categories.
func Default() Catalog {
	p := func(id int, name, category, price string, stock int, description string, threshold int) sales.Product {
		return sales.Product{
			ID:                id,
			Name:              name,
			Category:          category,
			Price:             decimal.RequireFromString(price),
			Stock:             stock,
			Description:       description,
			LowStockThreshold: threshold,
		}
	}

	return Catalog{
		Categories: []string{"Electronics", "Clothing", "Home & Kitchen", "Books", "Toys"},
		Products: []sales.Product{
			p(1, "Smartphone X", "Electronics", "799.99", 45, "Latest smartphone with advanced features", 10),
			p(2, "Laptop Pro", "Electronics", "1299.99", 12, "High-performance laptop for professionals", 5),
			p(3, "Cotton T-Shirt", "Clothing", "19.99", 150, "Comfortable cotton t-shirt", 20),
			p(4, "Denim Jeans", "Clothing", "49.99", 75, "Classic denim jeans", 15),
			p(5, "Coffee Maker", "Home & Kitchen", "89.99", 30, "Automatic coffee maker", 8),
			p(6, "Novel Collection", "Books", "29.99", 60, "Collection of bestselling novels", 10),
			p(7, "Building Blocks", "Toys", "24.99", 90, "Educational building blocks for kids", 20),
			p(8, "Wireless Earbuds", "Electronics", "129.99", 35, "High-quality wireless earbuds", 8),
			p(9, "Kitchen Blender", "Home & Kitchen", "69.99", 25, "Powerful kitchen blender", 5),
			p(10, "Winter Jacket", "Clothing", "149.99", 55, "Warm winter jacket", 10),
		},
	}
}

// Load reads a catalog file. An empty path returns Default.
// Every product must carry a unique positive ID; categories used by products
// but missing from the categories list are appended in first-seen order.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}

	cat := Catalog{
		Categories: make([]string, 0, len(raw.Categories)),
		Products:   make([]sales.Product, 0, len(raw.Products)),
	}
	known := make(map[string]bool)
	addCategory := func(name string) {
		if !known[name] {
			known[name] = true
			cat.Categories = append(cat.Categories, name)
		}
	}

	for _, c := range raw.Categories {
		c = strings.TrimSpace(c)
		if c == "" {
			return Catalog{}, fmt.Errorf("catalog: category names must not be empty")
		}
		addCategory(c)
	}

	seen := make(map[int]bool)
	for i, rp := range raw.Products {
		p := rp.Product
		if p.ID <= 0 {
			return Catalog{}, fmt.Errorf("catalog product #%d: id must be > 0", i+1)
		}
		if seen[p.ID] {
			return Catalog{}, fmt.Errorf("catalog product %d: duplicate id", p.ID)
		}
		seen[p.ID] = true

		if err := ValidateProduct(&p, rp.Price); err != nil {
			return Catalog{}, fmt.Errorf("catalog product %d: %w", p.ID, err)
		}
		addCategory(p.Category)
		cat.Products = append(cat.Products, p)
	}

	return cat, nil
}

// ValidateProduct trims p's text fields, parses rawPrice into p.Price and
// checks the remaining fields. The ID is not checked.
func ValidateProduct(p *sales.Product, rawPrice interface{}) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)

	if p.Name == "" {
		return sales.InvalidArgumentf("name is required")
	}
	if p.Category == "" {
		return sales.InvalidArgumentf("category is required")
	}

	price, err := sales.ParseAmount(rawPrice)
	if err != nil {
		return sales.InvalidArgumentf("price: %v", err)
	}
	if price.IsNegative() {
		return sales.InvalidArgumentf("price must be >= 0")
	}
	p.Price = price

	if p.Stock < 0 {
		return sales.InvalidArgumentf("stock must be >= 0")
	}
	if p.LowStockThreshold < 0 {
		return sales.InvalidArgumentf("low_stock_threshold must be >= 0")
	}
	return nil
}
