// Package mockdata generates a synthetic daily sales history for a product
// catalog.
package mockdata

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// recordNamespace scopes the name-based record IDs.
var recordNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://salescope/sales"))

// GeneratorConfig configures sales generation.
type GeneratorConfig struct {
	// Seed for reproducible generation. 0 seeds from the clock.
	Seed int64
	// HistoryDays is how many days before today the history starts.
	// Today is always included, so HistoryDays+1 days are generated.
	HistoryDays int
	// MaxDailyQuantity is the largest quantity drawn per product per day.
	MaxDailyQuantity int
	// Location defines calendar days. nil means time.Local.
	Location *time.Location
}

// DefaultConfig returns one year of history with up to five units per
// product per day.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:             42,
		HistoryDays:      365,
		MaxDailyQuantity: 5,
		Location:         time.Local,
	}
}

// Generator produces sale records. It is safe for concurrent use.
type Generator struct {
	cfg GeneratorConfig
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
	run int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock overrides the clock used to find today.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a new sales generator.
func NewGenerator(cfg GeneratorConfig, opts ...Option) *Generator {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.MaxDailyQuantity < 0 {
		cfg.MaxDailyQuantity = 0
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		cfg: cfg,
		now: time.Now,
		rng: rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate walks every calendar day from today-HistoryDays through today and,
// for each product, draws a quantity in [0, MaxDailyQuantity]. Zero draws
// produce no record. Revenue is quantity × price.
//
// Each call continues the random stream, so consecutive calls yield different
// datasets with distinct record IDs.
func (g *Generator) Generate(products []sales.Product) []sales.SaleRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.run++
	today := midnight(g.now(), g.cfg.Location)
	start := today.AddDate(0, 0, -g.cfg.HistoryDays)

	records := make([]sales.SaleRecord, 0, (g.cfg.HistoryDays+1)*len(products)*g.cfg.MaxDailyQuantity/(g.cfg.MaxDailyQuantity+1))
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		dayKey := day.Format("2006-01-02")
		for _, p := range products {
			qty := g.rng.Intn(g.cfg.MaxDailyQuantity + 1)
			if qty == 0 {
				continue
			}
			records = append(records, sales.SaleRecord{
				ID:          recordID(dayKey, p.ID, g.run),
				ProductID:   p.ID,
				ProductName: p.Name,
				Category:    p.Category,
				Date:        day,
				Quantity:    int64(qty),
				Revenue:     p.Price.Mul(decimal.NewFromInt(int64(qty))),
			})
		}
	}
	return records
}

func recordID(day string, productID, run int) string {
	return uuid.NewSHA1(recordNamespace, []byte(fmt.Sprintf("%s/%d/%d", day, productID, run))).String()
}

// midnight truncates t to the start of its calendar day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
