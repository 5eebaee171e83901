package sales

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a loosely typed numeric value into a decimal.
// YAML and JSON decoders hand back float64, int or string depending on how the
// value was written; all three are accepted. Anything else is an error.
func ParseAmount(v interface{}) (decimal.Decimal, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case float64:
		return decimal.NewFromFloat(val), nil
	case float32:
		return decimal.NewFromFloat32(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case int32:
		return decimal.NewFromInt(int64(val)), nil
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid amount %q: %w", val, err)
		}
		return d, nil
	case nil:
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	return decimal.Zero, fmt.Errorf("unsupported amount type %T", v)
}
