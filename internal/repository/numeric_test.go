package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericFromDecimalRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "integer price", value: "1000"},
		{name: "two decimal places", value: "2499.99"},
		{name: "zero", value: "0"},
		{name: "negative adjustment", value: "-150.5"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := decimal.RequireFromString(tt.value)
			n := NumericFromDecimal(d)

			assert.True(t, n.Valid)
			got := decimal.NewFromBigInt(n.Int, n.Exp)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}
}

func TestValidOrderStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"pending", "processing", "shipped", "delivered"} {
		assert.True(t, ValidOrderStatus(status), status)
	}
	for _, status := range []string{"", "cancelled", "Pending", "delivered "} {
		assert.False(t, ValidOrderStatus(status), status)
	}
}
