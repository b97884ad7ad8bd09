package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PRADEEP5967/credit-system/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Customer events
// ---------------------------------------------------------------------------

// CustomerRegistered is raised when a customer is onboarded.
type CustomerRegistered struct {
	events.BaseEvent
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	ApprovedLimit decimal.Decimal `json:"approved_limit"`
}

func NewCustomerRegistered(customerID, firstName, lastName string, approvedLimit decimal.Decimal) CustomerRegistered {
	return CustomerRegistered{
		BaseEvent:     events.NewBaseEvent("credit.customer.registered", customerID, "Customer"),
		FirstName:     firstName,
		LastName:      lastName,
		ApprovedLimit: approvedLimit,
	}
}

// ---------------------------------------------------------------------------
// Loan events
// ---------------------------------------------------------------------------

// LoanIssued is raised when an approved eligibility decision produces a loan.
type LoanIssued struct {
	events.BaseEvent
	CustomerID     string          `json:"customer_id"`
	Principal      decimal.Decimal `json:"loan_amount"`
	InterestRate   float64         `json:"interest_rate"`
	TermMonths     int             `json:"tenure"`
	MonthlyPayment decimal.Decimal `json:"monthly_installment"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
}

func NewLoanIssued(
	loanID, customerID string,
	principal decimal.Decimal,
	interestRate float64,
	termMonths int,
	monthlyPayment decimal.Decimal,
	startDate, endDate time.Time,
) LoanIssued {
	return LoanIssued{
		BaseEvent:      events.NewBaseEvent("credit.loan.issued", loanID, "Loan"),
		CustomerID:     customerID,
		Principal:      principal,
		InterestRate:   interestRate,
		TermMonths:     termMonths,
		MonthlyPayment: monthlyPayment,
		StartDate:      startDate,
		EndDate:        endDate,
	}
}
