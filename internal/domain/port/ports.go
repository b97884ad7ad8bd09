package port

import (
	"context"
	"errors"

	"github.com/PRADEEP5967/credit-system/internal/domain/event"
	"github.com/PRADEEP5967/credit-system/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrCustomerNotFound is returned when a customer ID does not resolve.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrLoanNotFound is returned when a loan ID does not resolve.
	ErrLoanNotFound = errors.New("loan not found")
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// CustomerRepository persists and retrieves customers.
type CustomerRepository interface {
	Save(ctx context.Context, c model.Customer) error
	FindByID(ctx context.Context, id string) (model.Customer, error)
}

// LoanRepository retrieves loan records.
type LoanRepository interface {
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]model.Loan, error)
}

// IssuanceStore applies a loan issuance: it persists the new loan and adds its
// principal to the owning customer's current debt as one transaction. Either
// both writes commit or neither does.
type IssuanceStore interface {
	CreateLoanAndIncreaseDebt(ctx context.Context, loan model.Loan) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
