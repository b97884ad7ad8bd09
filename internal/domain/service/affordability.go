package service

import "github.com/shopspring/decimal"

// MaxInstallmentShare caps the combined monthly installments at half of the
// customer's monthly salary.
var MaxInstallmentShare = decimal.NewFromFloat(0.5)

// ReasonUnaffordable is the rejection reason when combined installments
// exceed the salary cap.
const ReasonUnaffordable = "EMIs exceed 50% of monthly salary"

// WithinAffordability reports whether the customer can carry the new
// installment: active installments plus the new one must not exceed half the
// monthly salary. Sitting exactly on the cap passes.
func WithinAffordability(activeInstallments, newInstallment, monthlySalary decimal.Decimal) bool {
	combined := activeInstallments.Add(newInstallment)
	return combined.LessThanOrEqual(monthlySalary.Mul(MaxInstallmentShare))
}
