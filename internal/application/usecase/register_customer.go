package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PRADEEP5967/credit-system/internal/application/dto"
	"github.com/PRADEEP5967/credit-system/internal/domain/model"
	"github.com/PRADEEP5967/credit-system/internal/domain/port"
)

// RegisterCustomerUseCase onboards a new customer and derives their approved
// credit limit from the declared monthly income.
type RegisterCustomerUseCase struct {
	customers port.CustomerRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

func NewRegisterCustomerUseCase(
	customers port.CustomerRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		customers: customers,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, req dto.RegisterCustomerRequest) (dto.RegisterCustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.RegisterCustomerResponse{}, err
	}

	customer, err := model.NewCustomer(req.FirstName, req.LastName, req.Age, req.PhoneNumber, req.MonthlyIncome, time.Now())
	if err != nil {
		return dto.RegisterCustomerResponse{}, fmt.Errorf("creating customer: %w", err)
	}

	if err := uc.customers.Save(ctx, customer); err != nil {
		return dto.RegisterCustomerResponse{}, fmt.Errorf("saving customer: %w", err)
	}

	if err := uc.publisher.Publish(ctx, customer.DomainEvents()...); err != nil {
		uc.logger.Error("failed to publish customer events",
			slog.String("customer_id", customer.ID()),
			slog.String("error", err.Error()))
	}

	uc.logger.Info("customer registered",
		slog.String("customer_id", customer.ID()),
		slog.String("approved_limit", customer.ApprovedLimit().String()))

	return dto.RegisterCustomerResponse{
		CustomerID:    customer.ID(),
		Name:          customer.FullName(),
		Age:           customer.Age(),
		MonthlyIncome: customer.MonthlySalary(),
		ApprovedLimit: customer.ApprovedLimit(),
		PhoneNumber:   customer.PhoneNumber(),
	}, nil
}
