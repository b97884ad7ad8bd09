package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyInstallment computes the fixed monthly payment (EMI) for an
// amortized loan.
//
// Parameters:
//   - principal:    the loan amount, must be positive
//   - annualRate:   nominal annual interest rate in percent (e.g. 12.5)
//   - termMonths:   number of monthly periods, must be at least 1
//
// The calculation uses:
//
//	monthlyRate = annualRate / 100 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// Zero-interest loans pay an even split of the principal. The result is
// rounded half-up to two decimal places.
func MonthlyInstallment(principal decimal.Decimal, annualRate float64, termMonths int) decimal.Decimal {
	monthlyRate := annualRate / 12.0 / 100.0

	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	// The power term needs float64; switch back to decimal for the money.
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2)
}
