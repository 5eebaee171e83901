package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aevon-lab/salescope/internal/core/aggregation"
	"github.com/aevon-lab/salescope/internal/core/chart"
	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/aevon-lab/salescope/internal/inventory"
	"github.com/aevon-lab/salescope/internal/telemetry"
	"golang.org/x/sync/errgroup"
)

// DataSource supplies the sales snapshot and summary figures.
// *inventory.Store satisfies it.
type DataSource interface {
	Sales(ctx context.Context) ([]sales.SaleRecord, error)
	Summary(ctx context.Context) (inventory.Summary, error)
}

// Config controls how charts are built.
type Config struct {
	DefaultTimeframe sales.Granularity
	Style            chart.Style
	Options          chart.Options
}

// DefaultConfig returns a monthly default timeframe with stock chart styling.
func DefaultConfig() Config {
	return Config{
		DefaultTimeframe: sales.Monthly,
		Style:            chart.DefaultStyle,
		Options:          chart.DefaultOptions(),
	}
}

// Service turns the sales dataset into chart payloads.
type Service struct {
	source  DataSource
	cfg     Config
	metrics *telemetry.AggregationMetrics
	nowFn   func() time.Time
}

// NewService creates a dashboard service. metrics may be nil.
func NewService(source DataSource, cfg Config, metrics *telemetry.AggregationMetrics) *Service {
	if source == nil {
		panic("dashboard: data source must not be nil")
	}
	if !cfg.DefaultTimeframe.Valid() {
		cfg.DefaultTimeframe = sales.Monthly
	}
	return &Service{
		source:  source,
		cfg:     cfg,
		metrics: metrics,
		nowFn:   time.Now,
	}
}

// Series aggregates the current dataset at the requested timeframe.
// An empty timeframe selects the configured default; an unknown one returns
// an error wrapping sales.ErrInvalidArgument.
func (s *Service) Series(ctx context.Context, timeframe string) (SeriesResponse, error) {
	g, err := s.resolveTimeframe(timeframe)
	if err != nil {
		return SeriesResponse{}, err
	}

	records, err := s.source.Sales(ctx)
	if err != nil {
		return SeriesResponse{}, fmt.Errorf("load sales: %w", err)
	}

	start := s.nowFn()
	series, err := aggregation.Aggregate(records, g)
	if err != nil {
		s.metrics.IncFailure(g.String())
		return SeriesResponse{}, fmt.Errorf("aggregate %s: %w", g, err)
	}
	elapsed := s.nowFn().Sub(start)
	s.metrics.Observe(g.String(), elapsed, series.Len())

	slog.Debug("Aggregated sales",
		"timeframe", g,
		"records", len(records),
		"buckets", series.Len(),
		"duration", elapsed)

	return SeriesResponse{Timeframe: g.String(), TimeSeries: series}, nil
}

// SalesChart returns the revenue and orders charts for timeframe.
func (s *Service) SalesChart(ctx context.Context, timeframe string) (SalesChartResponse, error) {
	series, err := s.Series(ctx, timeframe)
	if err != nil {
		return SalesChartResponse{}, err
	}

	return SalesChartResponse{
		Timeframe: series.Timeframe,
		Labels:    series.Labels,
		Revenue:   chart.RevenueChart(series.Labels, series.RevenueData, s.cfg.Style),
		Orders:    chart.OrdersChart(series.Labels, series.OrdersData, s.cfg.Style),
		Options:   s.cfg.Options,
	}, nil
}

// Summary returns the headline figures.
func (s *Service) Summary(ctx context.Context) (inventory.Summary, error) {
	summary, err := s.source.Summary(ctx)
	if err != nil {
		return inventory.Summary{}, fmt.Errorf("load summary: %w", err)
	}
	return summary, nil
}

// Overview loads the summary and the sales chart concurrently.
func (s *Service) Overview(ctx context.Context, timeframe string) (OverviewResponse, error) {
	var resp OverviewResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.Summary(gctx)
		if err != nil {
			return err
		}
		resp.Summary = summary
		return nil
	})
	g.Go(func() error {
		salesChart, err := s.SalesChart(gctx, timeframe)
		if err != nil {
			return err
		}
		resp.Sales = salesChart
		return nil
	})
	if err := g.Wait(); err != nil {
		return OverviewResponse{}, err
	}
	return resp, nil
}

func (s *Service) resolveTimeframe(timeframe string) (sales.Granularity, error) {
	if timeframe == "" {
		return s.cfg.DefaultTimeframe, nil
	}
	return sales.ParseGranularity(timeframe)
}
