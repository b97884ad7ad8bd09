package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/PRADEEP5967/credit-system/internal/application/dto"
	"github.com/PRADEEP5967/credit-system/internal/application/usecase"
	"github.com/PRADEEP5967/credit-system/internal/domain/port"
)

// CreditHandler exposes the credit decision operations over gRPC.
type CreditHandler struct {
	UnimplementedCreditServiceServer

	registerCustomer  *usecase.RegisterCustomerUseCase
	checkEligibility  *usecase.CheckEligibilityUseCase
	createLoan        *usecase.CreateLoanUseCase
	getLoan           *usecase.GetLoanUseCase
	listCustomerLoans *usecase.ListCustomerLoansUseCase
	logger            *slog.Logger
}

// NewCreditHandler creates a new handler with all use-case dependencies.
func NewCreditHandler(
	registerCustomer *usecase.RegisterCustomerUseCase,
	checkEligibility *usecase.CheckEligibilityUseCase,
	createLoan *usecase.CreateLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	listCustomerLoans *usecase.ListCustomerLoansUseCase,
	logger *slog.Logger,
) *CreditHandler {
	return &CreditHandler{
		registerCustomer:  registerCustomer,
		checkEligibility:  checkEligibility,
		createLoan:        createLoan,
		getLoan:           getLoan,
		listCustomerLoans: listCustomerLoans,
		logger:            logger,
	}
}

// RegisterCustomer onboards a customer and returns the derived credit limit.
func (h *CreditHandler) RegisterCustomer(ctx context.Context, req *RegisterCustomerRequest) (*RegisterCustomerResponse, error) {
	resp, err := h.registerCustomer.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(err, "RegisterCustomer")
	}
	return &resp, nil
}

// CheckEligibility runs the credit decision without issuing anything.
func (h *CreditHandler) CheckEligibility(ctx context.Context, req *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	resp, err := h.checkEligibility.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(err, "CheckEligibility")
	}
	return &resp, nil
}

// CreateLoan runs the credit decision and issues the loan on approval.
func (h *CreditHandler) CreateLoan(ctx context.Context, req *CreateLoanRequest) (*CreateLoanResponse, error) {
	resp, err := h.createLoan.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(err, "CreateLoan")
	}
	return &resp, nil
}

// GetLoan retrieves a loan with its owning customer.
func (h *CreditHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(err, "GetLoan")
	}
	return &resp, nil
}

// ListCustomerLoans lists every loan of a customer.
func (h *CreditHandler) ListCustomerLoans(ctx context.Context, req *ListCustomerLoansRequest) (*ListCustomerLoansResponse, error) {
	resp, err := h.listCustomerLoans.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(err, "ListCustomerLoans")
	}
	return &resp, nil
}

// toStatus translates application errors into gRPC status codes.
func (h *CreditHandler) toStatus(err error, method string) error {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())
	case errors.Is(err, port.ErrCustomerNotFound), errors.Is(err, port.ErrLoanNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("method", method),
			slog.String("error", err.Error()))
		return status.Error(codes.Internal, "internal error")
	}
}
