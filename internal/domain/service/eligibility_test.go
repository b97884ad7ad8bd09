package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/PRADEEP5967/credit-system/internal/domain/model"
	"github.com/PRADEEP5967/credit-system/internal/domain/valueobject"
)

func testCustomer(salary int64) model.Customer {
	now := time.Now()
	monthly := decimal.NewFromInt(salary)
	return model.ReconstructCustomer(
		"cust-1", "Asha", "Iyer", 31, "9876543210",
		monthly, model.DeriveApprovedLimit(monthly), decimal.Zero,
		1, now, now,
	)
}

func newEvaluator() *EligibilityEvaluator {
	return NewEligibilityEvaluator(
		NewCreditScorer(DefaultScoreWeights),
		NewPolicyEngine(DefaultRateBands, DefaultFloorRate),
	)
}

func TestEvaluate_NewCustomerRejectedBelowBandMinimum(t *testing.T) {
	// An empty history scores 40, so the policy demands a rate above 12.
	decision := newEvaluator().Evaluate(testCustomer(100_000), nil, LoanTerms{
		Principal:    decimal.NewFromInt(100_000),
		InterestRate: 10,
		TermMonths:   12,
	}, time.Now())

	assert.False(t, decision.Approved)
	assert.Equal(t, 10.0, decision.InterestRate)
	assert.Equal(t, 12.0, decision.CorrectedRate)
	assert.Equal(t, "8884.88", decision.MonthlyInstallment.StringFixed(2))
	assert.Equal(t, ReasonPolicyRejection, decision.Reason)
}

func TestEvaluate_NewCustomerApprovedAboveBandMinimum(t *testing.T) {
	decision := newEvaluator().Evaluate(testCustomer(100_000), nil, LoanTerms{
		Principal:    decimal.NewFromInt(100_000),
		InterestRate: 15,
		TermMonths:   12,
	}, time.Now())

	assert.True(t, decision.Approved)
	assert.Equal(t, 15.0, decision.CorrectedRate)
	assert.Equal(t, "9025.83", decision.MonthlyInstallment.StringFixed(2))
	assert.Empty(t, decision.Reason)
}

func TestEvaluate_DebtOverLimitForcesRejection(t *testing.T) {
	now := time.Now().UTC()
	customer := testCustomer(100_000) // limit 3,600,000

	// One unexpired loan whose principal exceeds the approved limit. The
	// installment is kept tiny so affordability does not interfere.
	over := model.ReconstructLoan(
		"loan-big", "cust-1",
		decimal.NewFromInt(4_000_000), 10, 120,
		decimal.NewFromInt(100), 120,
		now.AddDate(0, -1, 0), now.AddDate(5, 0, 0),
		valueobject.LoanStatusApproved, 1, now, now,
	)

	decision := newEvaluator().Evaluate(customer, []model.Loan{over}, LoanTerms{
		Principal:    decimal.NewFromInt(100_000),
		InterestRate: 20,
		TermMonths:   12,
	}, now)

	assert.False(t, decision.Approved)
	assert.Equal(t, 16.0, decision.CorrectedRate, "a zero score reports the floor rate")
	assert.Equal(t, ReasonPolicyRejection, decision.Reason)
}

func TestEvaluate_AffordabilityVetoPrecedesPolicy(t *testing.T) {
	now := time.Now().UTC()
	customer := testCustomer(100_000)

	// Active installments already consume 48,000 of the 50,000 cap; the new
	// installment pushes past it even though the score would approve.
	active := model.ReconstructLoan(
		"loan-active", "cust-1",
		decimal.NewFromInt(500_000), 12, 24,
		decimal.NewFromInt(48_000), 24,
		now.AddDate(0, -2, 0), now.AddDate(1, 0, 0),
		valueobject.LoanStatusApproved, 1, now, now,
	)

	decision := newEvaluator().Evaluate(customer, []model.Loan{active}, LoanTerms{
		Principal:    decimal.NewFromInt(100_000),
		InterestRate: 15,
		TermMonths:   12,
	}, now)

	assert.False(t, decision.Approved)
	assert.Equal(t, 15.0, decision.CorrectedRate, "the veto reports the requested rate, not a corrected one")
	assert.Equal(t, "9025.83", decision.MonthlyInstallment.StringFixed(2))
	assert.Equal(t, ReasonUnaffordable, decision.Reason)
}

func TestEvaluate_AffordabilityVetoPrecedesDebtOverride(t *testing.T) {
	now := time.Now().UTC()
	customer := testCustomer(100_000)

	// Over the limit and over the installment cap at once: the affordability
	// reason wins because it is checked first.
	loan := model.ReconstructLoan(
		"loan-heavy", "cust-1",
		decimal.NewFromInt(4_000_000), 10, 120,
		decimal.NewFromInt(49_000), 12,
		now.AddDate(0, -1, 0), now.AddDate(5, 0, 0),
		valueobject.LoanStatusApproved, 1, now, now,
	)

	decision := newEvaluator().Evaluate(customer, []model.Loan{loan}, LoanTerms{
		Principal:    decimal.NewFromInt(100_000),
		InterestRate: 15,
		TermMonths:   12,
	}, now)

	assert.False(t, decision.Approved)
	assert.Equal(t, ReasonUnaffordable, decision.Reason)
}

func TestEvaluate_ExpiredLoansDoNotCount(t *testing.T) {
	now := time.Now().UTC()
	customer := testCustomer(100_000)

	// A finished loan with a huge installment: it must not affect
	// affordability, only history-based scoring.
	expired := model.ReconstructLoan(
		"loan-done", "cust-1",
		decimal.NewFromInt(500_000), 12, 12,
		decimal.NewFromInt(60_000), 12,
		now.AddDate(-3, 0, 0), now.AddDate(-2, 0, 0),
		valueobject.LoanStatusApproved, 1, now, now,
	)

	decision := newEvaluator().Evaluate(customer, []model.Loan{expired}, LoanTerms{
		Principal:    decimal.NewFromInt(100_000),
		InterestRate: 15,
		TermMonths:   12,
	}, now)

	assert.True(t, decision.Approved)
}
