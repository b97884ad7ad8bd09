package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PRADEEP5967/credit-system/internal/domain/model"
)

// ---------------------------------------------------------------------------
// CreditScorer – domain service for history-based credit scoring
// ---------------------------------------------------------------------------

// ScoreWeights carries the weight of each scoring component. The weights sum
// to the maximum attainable score.
type ScoreWeights struct {
	OnTimeRatio       float64
	LoanCount         float64
	RecentActivity    float64
	VolumeUtilization float64
}

// DefaultScoreWeights is the production weight table (maximum score 100).
var DefaultScoreWeights = ScoreWeights{
	OnTimeRatio:       40,
	LoanCount:         15,
	RecentActivity:    15,
	VolumeUtilization: 20,
}

const (
	// loanCountCap is the number of past loans after which history depth
	// earns no further credit.
	loanCountCap = 10
	// recentLoanCap is the number of current-year loans after which recent
	// activity earns no further credit.
	recentLoanCap = 5
)

// CreditScorer computes a synthetic credit score from loan history.
type CreditScorer struct {
	weights ScoreWeights
}

// NewCreditScorer returns a scorer using the given weights.
func NewCreditScorer(weights ScoreWeights) *CreditScorer {
	return &CreditScorer{weights: weights}
}

// Score computes the credit score for a customer's loan history against their
// approved limit. The result is a weighted sum of four components:
//
//  1. on-time ratio: installments paid on time over total installments due;
//     a customer with no history gets the full component (default trust)
//  2. loan count, capped at 10
//  3. loans started in the current calendar year, capped at 5
//  4. historical borrowing volume relative to the approved limit, capped at 1;
//     zero when no limit is set
//
// Empty history and a zero limit are valid inputs. The caller is responsible
// for the debt-over-limit override; that rule lives in the eligibility
// evaluator, not here.
func (s *CreditScorer) Score(history []model.Loan, approvedLimit decimal.Decimal, now time.Time) float64 {
	var totalTenure, totalOnTime int
	var recentCount int
	totalVolume := decimal.Zero

	for _, loan := range history {
		totalTenure += loan.TermMonths()
		totalOnTime += loan.EMIsPaidOnTime()
		if loan.StartDate().Year() == now.Year() {
			recentCount++
		}
		totalVolume = totalVolume.Add(loan.Principal())
	}

	onTimeRatio := 1.0
	if totalTenure > 0 {
		onTimeRatio = float64(totalOnTime) / float64(totalTenure)
	}

	countRatio := float64(min(len(history), loanCountCap)) / loanCountCap
	recentRatio := float64(min(recentCount, recentLoanCap)) / recentLoanCap

	volumeRatio := 0.0
	if approvedLimit.IsPositive() {
		volumeRatio = totalVolume.Div(approvedLimit).InexactFloat64()
		if volumeRatio > 1 {
			volumeRatio = 1
		}
	}

	return onTimeRatio*s.weights.OnTimeRatio +
		countRatio*s.weights.LoanCount +
		recentRatio*s.weights.RecentActivity +
		volumeRatio*s.weights.VolumeUtilization
}
