package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PRADEEP5967/credit-system/internal/application/dto"
	"github.com/PRADEEP5967/credit-system/internal/domain/port"
)

// ListCustomerLoansUseCase lists every loan of a customer with the remaining
// installment count computed as of today.
type ListCustomerLoansUseCase struct {
	loans     port.LoanRepository
	customers port.CustomerRepository
	logger    *slog.Logger
}

func NewListCustomerLoansUseCase(
	loans port.LoanRepository,
	customers port.CustomerRepository,
	logger *slog.Logger,
) *ListCustomerLoansUseCase {
	return &ListCustomerLoansUseCase{loans: loans, customers: customers, logger: logger}
}

func (uc *ListCustomerLoansUseCase) Execute(ctx context.Context, req dto.ListCustomerLoansRequest) (dto.ListCustomerLoansResponse, error) {
	if req.CustomerID == "" {
		v := &dto.ValidationError{Fields: []dto.FieldError{{Field: "customer_id", Message: "is required"}}}
		return dto.ListCustomerLoansResponse{}, v
	}

	// Resolving the customer first distinguishes an unknown customer from one
	// with no loans.
	if _, err := uc.customers.FindByID(ctx, req.CustomerID); err != nil {
		return dto.ListCustomerLoansResponse{}, fmt.Errorf("finding customer: %w", err)
	}

	loans, err := uc.loans.FindByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return dto.ListCustomerLoansResponse{}, fmt.Errorf("loading loans: %w", err)
	}

	now := time.Now()
	items := make([]dto.CustomerLoanItem, 0, len(loans))
	for _, loan := range loans {
		items = append(items, dto.CustomerLoanItem{
			LoanID:             loan.ID(),
			LoanAmount:         loan.Principal(),
			InterestRate:       loan.InterestRate(),
			MonthlyInstallment: loan.MonthlyPayment(),
			RepaymentsLeft:     loan.RepaymentsLeft(now),
		})
	}

	return dto.ListCustomerLoansResponse{
		CustomerID: req.CustomerID,
		Loans:      items,
	}, nil
}
