package aggregation

import (
	"fmt"
	"sort"

	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/shopspring/decimal"
)

// Aggregate buckets records by g and returns one label, revenue total and
// order total per bucket, ordered by bucket key.
//
// Records may arrive in any order. The input slice is never modified and no
// state survives the call, so concurrent calls over independent snapshots are
// safe. An unrecognized granularity fails with sales.ErrInvalidArgument before
// any record is read.
func Aggregate(records []sales.SaleRecord, g sales.Granularity) (TimeSeries, error) {
	if !g.Valid() {
		return TimeSeries{}, sales.InvalidArgumentf("unsupported granularity %q", string(g))
	}

	set := newBucketSet()
	for i := range records {
		rec := &records[i]
		key, err := BucketKey(rec.Date, g)
		if err != nil {
			return TimeSeries{}, err
		}

		b := set.bucket(key)
		b.Revenue = b.Revenue.Add(rec.Revenue)
		b.Orders += rec.Quantity
	}

	keys := make([]string, len(set.keys))
	copy(keys, set.keys)
	sort.Strings(keys)

	ts := TimeSeries{
		Labels:      make([]string, 0, len(keys)),
		RevenueData: make([]string, 0, len(keys)),
		OrdersData:  make([]int64, 0, len(keys)),
	}
	for _, key := range keys {
		label, err := FormatLabel(key, g)
		if err != nil {
			return TimeSeries{}, fmt.Errorf("label bucket %q: %w", key, err)
		}
		b := set.buckets[key]
		ts.Labels = append(ts.Labels, label)
		ts.RevenueData = append(ts.RevenueData, roundRevenue(b.Revenue))
		ts.OrdersData = append(ts.OrdersData, b.Orders)
	}

	return ts, nil
}

// roundRevenue rounds half away from zero to two places, matching how money is
// shown everywhere else on the dashboard.
func roundRevenue(d decimal.Decimal) string {
	return d.StringFixed(2)
}
