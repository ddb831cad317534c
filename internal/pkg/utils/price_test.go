package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalWithTax(t *testing.T) {
	taxRate := decimal.RequireFromString("0.10")

	t.Run("round base price", func(t *testing.T) {
		total, err := TotalWithTax(decimal.RequireFromString("100"), taxRate)
		require.NoError(t, err)
		assert.Equal(t, "110.00", total.StringFixed(2))
	})

	t.Run("fractional base price rounds half up", func(t *testing.T) {
		// 49.99 * 1.10 = 54.989 -> 54.99
		total, err := TotalWithTax(decimal.RequireFromString("49.99"), taxRate)
		require.NoError(t, err)
		assert.Equal(t, "54.99", total.StringFixed(2))
	})

	t.Run("half cent rounds up", func(t *testing.T) {
		// 0.05 * 1.10 = 0.055 -> 0.06
		total, err := TotalWithTax(decimal.RequireFromString("0.05"), taxRate)
		require.NoError(t, err)
		assert.Equal(t, "0.06", total.StringFixed(2))
	})

	t.Run("zero base price", func(t *testing.T) {
		total, err := TotalWithTax(decimal.Zero, taxRate)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("negative base price is rejected", func(t *testing.T) {
		_, err := TotalWithTax(decimal.RequireFromString("-1"), taxRate)
		require.Error(t, err)
	})
}
