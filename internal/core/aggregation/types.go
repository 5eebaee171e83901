package aggregation

import (
	"github.com/shopspring/decimal"
)

// TimeBucket accumulates every record that falls into one bucket key.
type TimeBucket struct {
	Revenue decimal.Decimal // exact sum; rounded only when emitted
	Orders  int64
}

// TimeSeries is the chart-ready output of Aggregate.
// Index i of every slice describes the same bucket.
type TimeSeries struct {
	Labels      []string `json:"labels"`
	RevenueData []string `json:"revenueData"` // two-decimal strings, e.g. "25.00"
	OrdersData  []int64  `json:"ordersData"`
}

// Len returns the number of buckets in the series.
func (ts TimeSeries) Len() int {
	return len(ts.Labels)
}

// bucketSet maps bucket keys to accumulators and remembers which keys exist,
// so ordering is materialized explicitly instead of depending on map iteration.
type bucketSet struct {
	buckets map[string]*TimeBucket
	keys    []string
}

func newBucketSet() *bucketSet {
	return &bucketSet{buckets: make(map[string]*TimeBucket)}
}

// bucket returns the accumulator for key, creating it on first use.
func (s *bucketSet) bucket(key string) *TimeBucket {
	b, ok := s.buckets[key]
	if !ok {
		b = &TimeBucket{Revenue: decimal.Zero}
		s.buckets[key] = b
		s.keys = append(s.keys, key)
	}
	return b
}
