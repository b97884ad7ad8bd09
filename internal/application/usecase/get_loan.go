package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PRADEEP5967/credit-system/internal/application/dto"
	"github.com/PRADEEP5967/credit-system/internal/domain/port"
)

// GetLoanUseCase retrieves a single loan together with its owning customer.
type GetLoanUseCase struct {
	loans     port.LoanRepository
	customers port.CustomerRepository
	logger    *slog.Logger
}

func NewGetLoanUseCase(
	loans port.LoanRepository,
	customers port.CustomerRepository,
	logger *slog.Logger,
) *GetLoanUseCase {
	return &GetLoanUseCase{loans: loans, customers: customers, logger: logger}
}

func (uc *GetLoanUseCase) Execute(ctx context.Context, req dto.GetLoanRequest) (dto.LoanResponse, error) {
	if req.LoanID == "" {
		v := &dto.ValidationError{Fields: []dto.FieldError{{Field: "loan_id", Message: "is required"}}}
		return dto.LoanResponse{}, v
	}

	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("finding loan: %w", err)
	}

	customer, err := uc.customers.FindByID(ctx, loan.CustomerID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("finding customer: %w", err)
	}

	return dto.LoanResponse{
		LoanID: loan.ID(),
		Customer: dto.CustomerSummary{
			ID:          customer.ID(),
			FirstName:   customer.FirstName(),
			LastName:    customer.LastName(),
			PhoneNumber: customer.PhoneNumber(),
			Age:         customer.Age(),
		},
		LoanAmount:         loan.Principal(),
		InterestRate:       loan.InterestRate(),
		MonthlyInstallment: loan.MonthlyPayment(),
		Tenure:             loan.TermMonths(),
		StartDate:          loan.StartDate(),
		EndDate:            loan.EndDate(),
		Status:             loan.Status().String(),
	}, nil
}
