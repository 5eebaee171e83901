package aggregation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aevon-lab/salescope/internal/core/sales"
)

// ErrMalformedKey means a bucket key does not have the shape its granularity
// produces. Keys built by BucketKey never trigger it, so seeing it is a bug.
var ErrMalformedKey = errors.New("malformed bucket key")

var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatLabel turns a bucket key into the label shown on the chart axis.
//
//	daily    2024-01-07 -> 2024-01-07
//	weekly   2024-W09   -> Week 9, 2024 (unpadded keys such as 2024-W9 are accepted)
//	monthly  2024-03    -> Mar 2024
//	annually 2024       -> 2024
func FormatLabel(key string, g sales.Granularity) (string, error) {
	switch g {
	case sales.Daily:
		parts := strings.Split(key, "-")
		if len(parts) != 3 || !isYear(parts[0]) || !inRange(parts[1], 1, 12) || !inRange(parts[2], 1, 31) {
			return "", malformedKeyf(key, g)
		}
		return key, nil
	case sales.Weekly:
		year, week, ok := strings.Cut(key, "-W")
		if !ok || !isYear(year) || !inRange(week, 1, 54) {
			return "", malformedKeyf(key, g)
		}
		n, _ := strconv.Atoi(week)
		return fmt.Sprintf("Week %d, %s", n, year), nil
	case sales.Monthly:
		year, month, ok := strings.Cut(key, "-")
		if !ok || !isYear(year) || !inRange(month, 1, 12) {
			return "", malformedKeyf(key, g)
		}
		m, _ := strconv.Atoi(month)
		return fmt.Sprintf("%s %s", monthAbbrev[m-1], year), nil
	case sales.Annually:
		if !isYear(key) {
			return "", malformedKeyf(key, g)
		}
		return key, nil
	default:
		return "", sales.InvalidArgumentf("unsupported granularity %q", string(g))
	}
}

func malformedKeyf(key string, g sales.Granularity) error {
	return fmt.Errorf("%w: %q is not a %s key", ErrMalformedKey, key, g)
}

func isYear(s string) bool {
	return len(s) == 4 && isDigits(s)
}

// inRange reports whether s is a plain decimal number within [lo, hi].
func inRange(s string, lo, hi int) bool {
	if s == "" || len(s) > 2 || !isDigits(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
