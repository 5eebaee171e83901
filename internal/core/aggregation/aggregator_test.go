package aggregation

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/aevon-lab/salescope/internal/core/sales"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func record(date time.Time, qty int64, revenue string) sales.SaleRecord {
	return sales.SaleRecord{
		ProductID:   1,
		ProductName: "Smartphone X",
		Category:    "Electronics",
		Date:        date,
		Quantity:    qty,
		Revenue:     decimal.RequireFromString(revenue),
	}
}

func sampleDates() []time.Time {
	return []time.Time{
		day(2023, 1, 1),
		day(2023, 12, 31),
		day(2024, 1, 1),
		day(2024, 2, 29),
		day(2024, 3, 1),
		day(2024, 12, 31),
		day(2000, 12, 31),
	}
}

// randomRecords spans several years so weekly keys cross year boundaries.
func randomRecords(seed int64, n int) []sales.SaleRecord {
	rng := rand.New(rand.NewSource(seed))
	start := day(2022, 11, 15)
	out := make([]sales.SaleRecord, 0, n)
	for i := 0; i < n; i++ {
		cents := rng.Int63n(500000)
		out = append(out, sales.SaleRecord{
			ProductID: rng.Intn(10) + 1,
			Date:      start.AddDate(0, 0, rng.Intn(900)),
			Quantity:  rng.Int63n(5) + 1,
			Revenue:   decimal.New(cents, -2),
		})
	}
	return out
}

func TestAggregate_DailyScenario(t *testing.T) {
	records := []sales.SaleRecord{
		record(day(2024, 1, 2), 1, "5.00"),
		record(day(2024, 1, 1), 2, "10.00"),
		record(day(2024, 1, 1), 3, "15.00"),
	}

	ts, err := Aggregate(records, sales.Daily)
	require.NoError(t, err)
	require.Equal(t, []string{"2024-01-01", "2024-01-02"}, ts.Labels)
	require.Equal(t, []string{"25.00", "5.00"}, ts.RevenueData)
	require.Equal(t, []int64{5, 1}, ts.OrdersData)
}

func TestAggregate_Granularities(t *testing.T) {
	records := []sales.SaleRecord{
		record(day(2023, 12, 31), 1, "10.00"), // Sunday: week 53 of 2023
		record(day(2024, 1, 6), 2, "20.00"),   // week 1 of 2024
		record(day(2024, 1, 7), 1, "1.50"),    // week 2 of 2024
		record(day(2024, 3, 15), 4, "40.25"),
		record(day(2024, 3, 20), 1, "9.75"),
	}

	tests := []struct {
		granularity sales.Granularity
		wantLabels  []string
		wantRevenue []string
		wantOrders  []int64
	}{
		{
			granularity: sales.Weekly,
			wantLabels:  []string{"Week 53, 2023", "Week 1, 2024", "Week 2, 2024", "Week 11, 2024", "Week 12, 2024"},
			wantRevenue: []string{"10.00", "20.00", "1.50", "40.25", "9.75"},
			wantOrders:  []int64{1, 2, 1, 4, 1},
		},
		{
			granularity: sales.Monthly,
			wantLabels:  []string{"Dec 2023", "Jan 2024", "Mar 2024"},
			wantRevenue: []string{"10.00", "21.50", "50.00"},
			wantOrders:  []int64{1, 3, 5},
		},
		{
			granularity: sales.Annually,
			wantLabels:  []string{"2023", "2024"},
			wantRevenue: []string{"10.00", "71.50"},
			wantOrders:  []int64{1, 8},
		},
	}

	for _, tc := range tests {
		t.Run(string(tc.granularity), func(t *testing.T) {
			ts, err := Aggregate(records, tc.granularity)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLabels, ts.Labels)
			assert.Equal(t, tc.wantRevenue, ts.RevenueData)
			assert.Equal(t, tc.wantOrders, ts.OrdersData)
		})
	}
}

func TestAggregate_WeeklyOrderAcrossYears(t *testing.T) {
	// With unpadded keys "2024-W10" would sort before "2024-W9".
	records := []sales.SaleRecord{
		record(day(2024, 3, 8), 1, "1.00"),  // week 10
		record(day(2024, 3, 1), 1, "1.00"),  // week 9
		record(day(2023, 3, 10), 1, "1.00"), // week 10 of 2023
	}

	ts, err := Aggregate(records, sales.Weekly)
	require.NoError(t, err)
	require.Equal(t, []string{"Week 10, 2023", "Week 9, 2024", "Week 10, 2024"}, ts.Labels)
}

func TestAggregate_EmptyInput(t *testing.T) {
	for _, g := range sales.Granularities {
		t.Run(string(g), func(t *testing.T) {
			ts, err := Aggregate(nil, g)
			require.NoError(t, err)
			require.NotNil(t, ts.Labels)
			require.NotNil(t, ts.RevenueData)
			require.NotNil(t, ts.OrdersData)
			require.Equal(t, 0, ts.Len())
		})
	}
}

func TestAggregate_UnknownGranularity(t *testing.T) {
	records := []sales.SaleRecord{record(day(2024, 1, 1), 1, "1.00")}

	ts, err := Aggregate(records, sales.Granularity("hourly"))
	require.ErrorIs(t, err, sales.ErrInvalidArgument)
	require.Nil(t, ts.Labels)
	require.Nil(t, ts.RevenueData)
	require.Nil(t, ts.OrdersData)
}

func TestAggregate_ZeroQuantityTolerated(t *testing.T) {
	records := []sales.SaleRecord{
		record(day(2024, 1, 1), 0, "0.00"),
		record(day(2024, 1, 1), 2, "4.00"),
	}

	ts, err := Aggregate(records, sales.Daily)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, ts.OrdersData)
	require.Equal(t, []string{"4.00"}, ts.RevenueData)
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	records := []sales.SaleRecord{
		record(day(2024, 1, 1), 1, "0.125"),
		record(day(2024, 1, 1), 1, "0.0001"),
	}

	ts, err := Aggregate(records, sales.Daily)
	require.NoError(t, err)
	require.Equal(t, []string{"0.13"}, ts.RevenueData)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	records := randomRecords(7, 50)
	snapshot := make([]sales.SaleRecord, len(records))
	copy(snapshot, records)

	_, err := Aggregate(records, sales.Weekly)
	require.NoError(t, err)
	require.Equal(t, snapshot, records)
}

func TestAggregate_Properties(t *testing.T) {
	records := randomRecords(42, 2000)

	wantOrders := sales.TotalOrders(records)
	wantRevenue := sales.TotalRevenue(records)

	for _, g := range sales.Granularities {
		t.Run(string(g), func(t *testing.T) {
			ts, err := Aggregate(records, g)
			require.NoError(t, err)

			require.Equal(t, ts.Len(), len(ts.RevenueData))
			require.Equal(t, ts.Len(), len(ts.OrdersData))

			// Partition completeness.
			var gotOrders int64
			for _, o := range ts.OrdersData {
				gotOrders += o
			}
			require.Equal(t, wantOrders, gotOrders)

			// Revenue conservation. Inputs are whole cents, so rounding to
			// two places loses nothing and the sums match exactly.
			gotRevenue := decimal.Zero
			for _, s := range ts.RevenueData {
				gotRevenue = gotRevenue.Add(decimal.RequireFromString(s))
			}
			require.True(t, wantRevenue.Equal(gotRevenue), "want=%s got=%s", wantRevenue, gotRevenue)

			// Idempotence.
			again, err := Aggregate(records, g)
			require.NoError(t, err)
			require.Equal(t, ts, again)
		})
	}
}

func TestAggregate_SortOrder(t *testing.T) {
	records := randomRecords(99, 500)

	for _, g := range []sales.Granularity{sales.Daily, sales.Annually} {
		ts, err := Aggregate(records, g)
		require.NoError(t, err)
		require.True(t, sort.StringsAreSorted(ts.Labels), "%s labels not sorted", g)
	}

	// Monthly labels are "Mon YYYY"; check the order through the dates they name.
	ts, err := Aggregate(records, sales.Monthly)
	require.NoError(t, err)
	var prev time.Time
	for _, label := range ts.Labels {
		parsed, err := time.Parse("Jan 2006", label)
		require.NoError(t, err)
		require.False(t, parsed.Before(prev), "label %q out of order", label)
		prev = parsed
	}
}

func TestAggregate_IndependentResults(t *testing.T) {
	records := []sales.SaleRecord{record(day(2024, 1, 1), 1, "1.00")}

	first, err := Aggregate(records, sales.Daily)
	require.NoError(t, err)
	first.Labels[0] = "mutated"

	second, err := Aggregate(records, sales.Daily)
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", second.Labels[0])
}
