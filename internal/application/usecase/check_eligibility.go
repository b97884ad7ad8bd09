package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PRADEEP5967/credit-system/internal/application/dto"
	"github.com/PRADEEP5967/credit-system/internal/domain/port"
	"github.com/PRADEEP5967/credit-system/internal/domain/service"
)

// CheckEligibilityUseCase runs the credit decision for requested loan terms
// without persisting anything.
type CheckEligibilityUseCase struct {
	customers port.CustomerRepository
	loans     port.LoanRepository
	evaluator *service.EligibilityEvaluator
	logger    *slog.Logger
}

func NewCheckEligibilityUseCase(
	customers port.CustomerRepository,
	loans port.LoanRepository,
	evaluator *service.EligibilityEvaluator,
	logger *slog.Logger,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		customers: customers,
		loans:     loans,
		evaluator: evaluator,
		logger:    logger,
	}
}

func (uc *CheckEligibilityUseCase) Execute(ctx context.Context, req dto.CheckEligibilityRequest) (dto.CheckEligibilityResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.CheckEligibilityResponse{}, err
	}

	customer, err := uc.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return dto.CheckEligibilityResponse{}, fmt.Errorf("finding customer: %w", err)
	}

	history, err := uc.loans.FindByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return dto.CheckEligibilityResponse{}, fmt.Errorf("loading loan history: %w", err)
	}

	decision := uc.evaluator.Evaluate(customer, history, service.LoanTerms{
		Principal:    req.LoanAmount,
		InterestRate: req.InterestRate,
		TermMonths:   req.Tenure,
	}, time.Now())

	uc.logger.Info("eligibility evaluated",
		slog.String("customer_id", req.CustomerID),
		slog.Bool("approved", decision.Approved),
		slog.Float64("corrected_rate", decision.CorrectedRate))

	return dto.CheckEligibilityResponse{
		CustomerID:            req.CustomerID,
		Approval:              decision.Approved,
		InterestRate:          decision.InterestRate,
		CorrectedInterestRate: decision.CorrectedRate,
		Tenure:                decision.TermMonths,
		MonthlyInstallment:    decision.MonthlyInstallment,
		Reason:                decision.Reason,
	}, nil
}
