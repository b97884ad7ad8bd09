package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PRADEEP5967/credit-system/internal/application/dto"
	"github.com/PRADEEP5967/credit-system/internal/domain/model"
	"github.com/PRADEEP5967/credit-system/internal/domain/port"
	"github.com/PRADEEP5967/credit-system/internal/domain/service"
)

const issuedMessage = "Loan approved"

// CreateLoanUseCase runs the same decision as an eligibility check and, on
// approval, issues the loan at the corrected rate. The loan insert and the
// customer debt increase commit as one transaction.
type CreateLoanUseCase struct {
	customers port.CustomerRepository
	loans     port.LoanRepository
	issuance  port.IssuanceStore
	evaluator *service.EligibilityEvaluator
	publisher port.EventPublisher
	logger    *slog.Logger
}

func NewCreateLoanUseCase(
	customers port.CustomerRepository,
	loans port.LoanRepository,
	issuance port.IssuanceStore,
	evaluator *service.EligibilityEvaluator,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		customers: customers,
		loans:     loans,
		issuance:  issuance,
		evaluator: evaluator,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *CreateLoanUseCase) Execute(ctx context.Context, req dto.CreateLoanRequest) (dto.CreateLoanResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.CreateLoanResponse{}, err
	}

	customer, err := uc.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("finding customer: %w", err)
	}

	history, err := uc.loans.FindByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("loading loan history: %w", err)
	}

	now := time.Now()
	decision := uc.evaluator.Evaluate(customer, history, service.LoanTerms{
		Principal:    req.LoanAmount,
		InterestRate: req.InterestRate,
		TermMonths:   req.Tenure,
	}, now)

	if !decision.Approved {
		uc.logger.Info("loan rejected",
			slog.String("customer_id", req.CustomerID),
			slog.String("reason", decision.Reason))
		return dto.CreateLoanResponse{
			CustomerID:         req.CustomerID,
			LoanApproved:       false,
			Message:            decision.Reason,
			MonthlyInstallment: decision.MonthlyInstallment,
		}, nil
	}

	loan, err := model.NewLoan(
		customer.ID(),
		req.LoanAmount,
		decision.CorrectedRate,
		req.Tenure,
		decision.MonthlyInstallment,
		now,
	)
	if err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("creating loan: %w", err)
	}

	if err := uc.issuance.CreateLoanAndIncreaseDebt(ctx, loan); err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("issuing loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		uc.logger.Error("failed to publish loan events",
			slog.String("loan_id", loan.ID()),
			slog.String("error", err.Error()))
	}

	uc.logger.Info("loan issued",
		slog.String("loan_id", loan.ID()),
		slog.String("customer_id", customer.ID()),
		slog.String("principal", loan.Principal().String()),
		slog.Float64("interest_rate", loan.InterestRate()))

	return dto.CreateLoanResponse{
		LoanID:             loan.ID(),
		CustomerID:         customer.ID(),
		LoanApproved:       true,
		Message:            issuedMessage,
		MonthlyInstallment: loan.MonthlyPayment(),
	}, nil
}
