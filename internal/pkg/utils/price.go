package utils

import (
	"fitbook-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
)

// TotalWithTax computes basePrice * (1 + taxRate) rounded half-up to two
// decimal places. The platform tax rate is fixed (constvars.BookingTaxRate)
// but the rate stays a parameter so the arithmetic is testable on its own.
func TotalWithTax(basePrice, taxRate decimal.Decimal) (decimal.Decimal, error) {
	if basePrice.IsNegative() {
		return decimal.Zero, exceptions.ErrInvalidPrice(nil)
	}
	total := basePrice.Mul(decimal.NewFromInt(1).Add(taxRate))
	return total.Round(2), nil
}
