package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    decimal.Decimal
		wantErr bool
	}{
		{name: "float64", input: 799.99, want: decimal.RequireFromString("799.99")},
		{name: "float32", input: float32(7.25), want: decimal.RequireFromString("7.25")},
		{name: "int", input: 12, want: decimal.NewFromInt(12)},
		{name: "int32", input: int32(8), want: decimal.NewFromInt(8)},
		{name: "int64", input: int64(9), want: decimal.NewFromInt(9)},
		{name: "decimal string", input: "1299.99", want: decimal.RequireFromString("1299.99")},
		{name: "decimal passthrough", input: decimal.RequireFromString("3.5"), want: decimal.RequireFromString("3.5")},
		{name: "invalid string", input: "twelve", wantErr: true},
		{name: "missing", input: nil, wantErr: true},
		{name: "unsupported type", input: true, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "want=%s got=%s", tc.want, got)
		})
	}
}
