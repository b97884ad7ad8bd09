package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWithinAffordability(t *testing.T) {
	salary := decimal.NewFromInt(50_000)

	tests := []struct {
		name   string
		active string
		new    string
		want   bool
	}{
		{"well under the cap", "5000", "8000", true},
		{"exactly on the cap passes", "15000", "10000", true},
		{"one paisa over fails", "15000", "10000.01", false},
		{"no active loans", "0", "25000", true},
		{"new installment alone exceeds", "0", "25000.01", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinAffordability(
				decimal.RequireFromString(tt.active),
				decimal.RequireFromString(tt.new),
				salary,
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinAffordability_ZeroSalary(t *testing.T) {
	assert.False(t, WithinAffordability(decimal.Zero, decimal.NewFromInt(1), decimal.Zero))
	assert.True(t, WithinAffordability(decimal.Zero, decimal.Zero, decimal.Zero))
}
