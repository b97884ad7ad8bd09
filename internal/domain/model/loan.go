package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PRADEEP5967/credit-system/internal/domain/event"
	"github.com/PRADEEP5967/credit-system/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy.
type Loan struct {
	id             string
	customerID     string
	principal      decimal.Decimal
	termMonths     int
	interestRate   float64 // nominal annual rate in percent
	monthlyPayment decimal.Decimal
	emisPaidOnTime int
	startDate      time.Time
	endDate        time.Time
	status         valueobject.LoanStatus
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// loanScheduleDaysPerMonth fixes the repayment window arithmetic: the end
// date is start + 30 days per month of tenure, not true calendar months.
// Changing this shifts which loans count as active.
const loanScheduleDaysPerMonth = 30

// NewLoan issues a loan from an approved eligibility decision. The start date
// is the issue day, the end date start + 30 x tenure days, and the record is
// created directly in APPROVED with no on-time payments yet.
func NewLoan(
	customerID string,
	principal decimal.Decimal,
	interestRate float64,
	termMonths int,
	monthlyPayment decimal.Decimal,
	now time.Time,
) (Loan, error) {
	if customerID == "" {
		return Loan{}, errors.New("customer ID is required")
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return Loan{}, errors.New("principal must be positive")
	}
	if interestRate < 0 {
		return Loan{}, errors.New("interest rate must not be negative")
	}
	if termMonths <= 0 {
		return Loan{}, errors.New("term months must be positive")
	}
	if monthlyPayment.LessThanOrEqual(decimal.Zero) {
		return Loan{}, errors.New("monthly payment must be positive")
	}

	id := uuid.New().String()
	start := now.UTC()
	end := start.AddDate(0, 0, loanScheduleDaysPerMonth*termMonths)

	loan := Loan{
		id:             id,
		customerID:     customerID,
		principal:      principal,
		termMonths:     termMonths,
		interestRate:   interestRate,
		monthlyPayment: monthlyPayment,
		emisPaidOnTime: 0,
		startDate:      start,
		endDate:        end,
		status:         valueobject.LoanStatusApproved,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanIssued(
		id, customerID, principal, interestRate, termMonths, monthlyPayment, start, end,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, customerID string,
	principal decimal.Decimal,
	interestRate float64,
	termMonths int,
	monthlyPayment decimal.Decimal,
	emisPaidOnTime int,
	startDate, endDate time.Time,
	status valueobject.LoanStatus,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:             id,
		customerID:     customerID,
		principal:      principal,
		termMonths:     termMonths,
		interestRate:   interestRate,
		monthlyPayment: monthlyPayment,
		emisPaidOnTime: emisPaidOnTime,
		startDate:      startDate,
		endDate:        endDate,
		status:         status,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

// RecordOnTimeEMI increments the on-time payment counter. The counter never
// exceeds the tenure.
func (l Loan) RecordOnTimeEMI(now time.Time) (Loan, error) {
	if l.emisPaidOnTime >= l.termMonths {
		return l, errors.New("all installments already recorded")
	}
	next := l
	next.emisPaidOnTime = l.emisPaidOnTime + 1
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

// IsActiveOn reports whether the loan is still unexpired on the given day.
func (l Loan) IsActiveOn(day time.Time) bool {
	return !l.endDate.Before(day)
}

// RepaymentsLeft returns the number of installments remaining as of the given
// time, assuming one installment per elapsed calendar month.
func (l Loan) RepaymentsLeft(asOf time.Time) int {
	monthsElapsed := (asOf.Year()-l.startDate.Year())*12 + int(asOf.Month()) - int(l.startDate.Month())
	if monthsElapsed < 0 {
		monthsElapsed = 0
	}
	left := l.termMonths - monthsElapsed
	if left < 0 {
		return 0
	}
	return left
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                       { return l.id }
func (l Loan) CustomerID() string               { return l.customerID }
func (l Loan) Principal() decimal.Decimal       { return l.principal }
func (l Loan) TermMonths() int                  { return l.termMonths }
func (l Loan) InterestRate() float64            { return l.interestRate }
func (l Loan) MonthlyPayment() decimal.Decimal  { return l.monthlyPayment }
func (l Loan) EMIsPaidOnTime() int              { return l.emisPaidOnTime }
func (l Loan) StartDate() time.Time             { return l.startDate }
func (l Loan) EndDate() time.Time               { return l.endDate }
func (l Loan) Status() valueobject.LoanStatus   { return l.status }
func (l Loan) Version() int                     { return l.version }
func (l Loan) CreatedAt() time.Time             { return l.createdAt }
func (l Loan) UpdatedAt() time.Time             { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent { return l.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
