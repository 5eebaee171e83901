package aggregation

import (
	"fmt"
	"time"

	"github.com/aevon-lab/salescope/internal/core/sales"
)

// BucketKey derives the grouping key for t at granularity g.
// The calendar date is read in t's own location.
//
//	daily    2024-01-07
//	weekly   2024-W02
//	monthly  2024-01
//	annually 2024
//
// Every field is fixed-width and zero-padded, so sorting keys as strings sorts
// them chronologically, including weekly keys across year boundaries.
func BucketKey(t time.Time, g sales.Granularity) (string, error) {
	year, month, day := t.Date()

	switch g {
	case sales.Daily:
		return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), nil
	case sales.Weekly:
		return fmt.Sprintf("%04d-W%02d", year, WeekOfYear(t)), nil
	case sales.Monthly:
		return fmt.Sprintf("%04d-%02d", year, int(month)), nil
	case sales.Annually:
		return fmt.Sprintf("%04d", year), nil
	default:
		return "", sales.InvalidArgumentf("unsupported granularity %q", string(g))
	}
}

// WeekOfYear returns the dashboard's simplified week number for t:
//
//	ceil((dayOfYear + weekdayOfJan1 + 1) / 7)
//
// where dayOfYear is 0 for Jan 1 and weekdays count from Sunday = 0.
// This is not ISO 8601: weeks start on Sunday, week 1 is whatever partial
// week contains Jan 1, and the count never rolls into the neighbouring year.
// Results range from 1 to 54.
func WeekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	dayOfYear := t.YearDay() - 1
	n := dayOfYear + int(jan1.Weekday()) + 1
	return (n + 6) / 7
}
