package dashboard

import (
	"github.com/aevon-lab/salescope/internal/core/aggregation"
	"github.com/aevon-lab/salescope/internal/core/chart"
	"github.com/aevon-lab/salescope/internal/inventory"
)

// SalesChartResponse carries both dashboard charts for one timeframe.
// Revenue and Orders share Labels.
type SalesChartResponse struct {
	Timeframe string             `json:"timeframe"`
	Labels    []string           `json:"labels"`
	Revenue   chart.Data[string] `json:"revenue"`
	Orders    chart.Data[int64]  `json:"orders"`
	Options   chart.Options      `json:"options"`
}

// SeriesResponse is the raw aggregated series for one timeframe.
type SeriesResponse struct {
	Timeframe string `json:"timeframe"`
	aggregation.TimeSeries
}

// OverviewResponse combines the summary figures with the sales chart.
type OverviewResponse struct {
	Summary inventory.Summary  `json:"summary"`
	Sales   SalesChartResponse `json:"sales"`
}
