package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatSettlement(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "0 SAR"},
		{name: "thousands", amount: decimal.NewFromInt(1000), want: "1,000 SAR"},
		{name: "millions", amount: decimal.NewFromInt(1234567), want: "1,234,567 SAR"},
		{name: "rounds half up", amount: decimal.RequireFromString("187.5"), want: "188 SAR"},
		{name: "negative", amount: decimal.NewFromInt(-188), want: "-188 SAR"},
		{name: "negative thousands", amount: decimal.NewFromInt(-12500), want: "-12,500 SAR"},
		{name: "beyond int64", amount: decimal.RequireFromString("100000000000000000000"), want: "100,000,000,000,000,000,000 SAR"},
		{name: "negative beyond int64", amount: decimal.RequireFromString("-12345678901234567890123.4"), want: "-12,345,678,901,234,567,890,123 SAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSettlement(tt.amount))
		})
	}
}
