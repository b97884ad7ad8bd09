package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PRADEEP5967/credit-system/internal/domain/model"
)

// ---------------------------------------------------------------------------
// EligibilityEvaluator – composes scoring, affordability, and policy into a
// single decision. Pure: no I/O, safe for any number of goroutines.
// ---------------------------------------------------------------------------

// ReasonPolicyRejection is the rejection reason when the policy engine
// declines the request.
const ReasonPolicyRejection = "Loan not approved by policy"

// LoanTerms are the requested terms of a prospective loan.
type LoanTerms struct {
	Principal    decimal.Decimal
	InterestRate float64 // nominal annual rate in percent
	TermMonths   int
}

// Decision is the outcome of an eligibility evaluation. It is entirely
// derived and never persisted.
type Decision struct {
	Approved           bool
	InterestRate       float64 // the rate as requested
	CorrectedRate      float64 // the rate the decision is priced at
	TermMonths         int
	MonthlyInstallment decimal.Decimal
	Reason             string // empty on approval
}

// EligibilityEvaluator decides whether a customer qualifies for requested
// loan terms.
type EligibilityEvaluator struct {
	scorer *CreditScorer
	policy *PolicyEngine
}

// NewEligibilityEvaluator wires the scoring and policy components.
func NewEligibilityEvaluator(scorer *CreditScorer, policy *PolicyEngine) *EligibilityEvaluator {
	return &EligibilityEvaluator{scorer: scorer, policy: policy}
}

// Evaluate runs the decision pipeline for a customer, their full loan
// history, and the requested terms. The order is fixed:
//
//  1. outstanding principal across unexpired loans over the approved limit
//     forces the score to zero, bypassing the weighted formula
//  2. otherwise score the history
//  3. price the requested terms
//  4. the affordability cap vetoes everything else; the veto reports the
//     requested (uncorrected) rate and installment
//  5. the policy engine decides approval; the installment is re-priced at
//     the corrected rate
func (e *EligibilityEvaluator) Evaluate(
	customer model.Customer,
	history []model.Loan,
	terms LoanTerms,
	now time.Time,
) Decision {
	// Expiry is judged at day granularity in UTC.
	utc := now.UTC()
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	outstanding := decimal.Zero
	activeInstallments := decimal.Zero
	for _, loan := range history {
		if loan.IsActiveOn(day) {
			outstanding = outstanding.Add(loan.Principal())
			activeInstallments = activeInstallments.Add(loan.MonthlyPayment())
		}
	}

	var score float64
	if outstanding.GreaterThan(customer.ApprovedLimit()) {
		score = 0
	} else {
		score = e.scorer.Score(history, customer.ApprovedLimit(), now)
	}

	requestedInstallment := MonthlyInstallment(terms.Principal, terms.InterestRate, terms.TermMonths)

	if !WithinAffordability(activeInstallments, requestedInstallment, customer.MonthlySalary()) {
		return Decision{
			Approved:           false,
			InterestRate:       terms.InterestRate,
			CorrectedRate:      terms.InterestRate,
			TermMonths:         terms.TermMonths,
			MonthlyInstallment: requestedInstallment,
			Reason:             ReasonUnaffordable,
		}
	}

	approved, correctedRate := e.policy.Decide(score, terms.InterestRate)
	correctedInstallment := MonthlyInstallment(terms.Principal, correctedRate, terms.TermMonths)

	d := Decision{
		Approved:           approved,
		InterestRate:       terms.InterestRate,
		CorrectedRate:      correctedRate,
		TermMonths:         terms.TermMonths,
		MonthlyInstallment: correctedInstallment,
	}
	if !approved {
		d.Reason = ReasonPolicyRejection
	}
	return d
}
