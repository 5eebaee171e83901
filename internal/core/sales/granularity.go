package sales

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument marks caller errors such as an unrecognized granularity.
var ErrInvalidArgument = errors.New("invalid argument")

// Granularity is the width of a time bucket.
type Granularity string

const (
	Daily    Granularity = "daily"
	Weekly   Granularity = "weekly"
	Monthly  Granularity = "monthly"
	Annually Granularity = "annually"
)

// Granularities lists every recognized granularity, finest first.
var Granularities = []Granularity{Daily, Weekly, Monthly, Annually}

// Valid reports whether g is one of the four recognized granularities.
func (g Granularity) Valid() bool {
	switch g {
	case Daily, Weekly, Monthly, Annually:
		return true
	}
	return false
}

func (g Granularity) String() string {
	return string(g)
}

// ParseGranularity normalizes s and rejects anything outside Granularities.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", InvalidArgumentf("unsupported granularity %q (must be daily, weekly, monthly, or annually)", s)
	}
	return g, nil
}

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
