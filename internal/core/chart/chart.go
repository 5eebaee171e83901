package chart

import "fmt"

// ColorPair is the fill and border color of one dataset, as CSS color strings.
type ColorPair struct {
	Background string `json:"backgroundColor"`
	Border     string `json:"borderColor"`
}

// RGBA builds a ColorPair from one RGB color: a translucent fill and an
// opaque border.
func RGBA(r, g, b uint8, fillAlpha float64) ColorPair {
	return ColorPair{
		Background: fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, fillAlpha),
		Border:     fmt.Sprintf("rgba(%d, %d, %d, 1)", r, g, b),
	}
}

// Palette used by the dashboard charts.
var (
	RevenueColor = RGBA(75, 192, 192, 0.2)
	OrdersColor  = RGBA(153, 102, 255, 0.2)
)

// Style holds per-dataset styling that is not a color.
type Style struct {
	BorderWidth int `json:"borderWidth" koanf:"border_width"`
}

// DefaultStyle matches the dashboard's stock line width.
var DefaultStyle = Style{BorderWidth: 1}

// Dataset is one named, colored value series.
type Dataset[T any] struct {
	Label           string `json:"label"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     int    `json:"borderWidth"`
	Data            []T    `json:"data"`
}

// Data is the payload a chart component renders: shared axis labels plus
// datasets aligned to them.
type Data[T any] struct {
	Labels   []string     `json:"labels"`
	Datasets []Dataset[T] `json:"datasets"`
}

// BuildSeries wraps one value series and its labels into a chart payload.
// It does not check that labels and values have the same length; Aggregate
// guarantees that for its own output.
func BuildSeries[T any](name string, color ColorPair, labels []string, values []T, style Style) Data[T] {
	return Data[T]{
		Labels: labels,
		Datasets: []Dataset[T]{{
			Label:           name,
			BackgroundColor: color.Background,
			BorderColor:     color.Border,
			BorderWidth:     style.BorderWidth,
			Data:            values,
		}},
	}
}

// RevenueChart is the "Revenue" series in the dashboard palette.
func RevenueChart(labels []string, revenue []string, style Style) Data[string] {
	return BuildSeries("Revenue", RevenueColor, labels, revenue, style)
}

// OrdersChart is the "Orders" series in the dashboard palette.
func OrdersChart(labels []string, orders []int64, style Style) Data[int64] {
	return BuildSeries("Orders", OrdersColor, labels, orders, style)
}
