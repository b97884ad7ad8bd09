package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PRADEEP5967/credit-system/internal/domain/event"
)

// ---------------------------------------------------------------------------
// Customer aggregate root
// ---------------------------------------------------------------------------

// Customer is an immutable aggregate. The approved limit is fixed at
// onboarding; only loan issuance changes the current debt, and it does so
// through the issuance store, never through this aggregate.
type Customer struct {
	id            string
	firstName     string
	lastName      string
	age           int
	phoneNumber   string
	monthlySalary decimal.Decimal
	approvedLimit decimal.Decimal
	currentDebt   decimal.Decimal
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []event.DomainEvent
}

// approvedLimitUnit is the granularity the derived limit is rounded to
// (one lakh).
var approvedLimitUnit = decimal.NewFromInt(100_000)

var salaryLimitMultiplier = decimal.NewFromInt(36)

// DeriveApprovedLimit computes the onboarding credit limit:
// 36 x monthly salary, rounded half-up to the nearest 100,000.
func DeriveApprovedLimit(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary.
		Mul(salaryLimitMultiplier).
		Div(approvedLimitUnit).
		Round(0).
		Mul(approvedLimitUnit)
}

// NewCustomer onboards a customer, deriving the approved limit from the
// monthly salary and starting with zero debt.
func NewCustomer(
	firstName, lastName string,
	age int,
	phoneNumber string,
	monthlySalary decimal.Decimal,
	now time.Time,
) (Customer, error) {
	if firstName == "" {
		return Customer{}, errors.New("first name is required")
	}
	if lastName == "" {
		return Customer{}, errors.New("last name is required")
	}
	if age <= 0 {
		return Customer{}, errors.New("age must be positive")
	}
	if phoneNumber == "" {
		return Customer{}, errors.New("phone number is required")
	}
	if monthlySalary.IsNegative() {
		return Customer{}, errors.New("monthly salary must not be negative")
	}

	id := uuid.New().String()
	limit := DeriveApprovedLimit(monthlySalary)

	c := Customer{
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		age:           age,
		phoneNumber:   phoneNumber,
		monthlySalary: monthlySalary,
		approvedLimit: limit,
		currentDebt:   decimal.Zero,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}

	c.domainEvents = append(c.domainEvents, event.NewCustomerRegistered(id, firstName, lastName, limit))
	return c, nil
}

// ReconstructCustomer rebuilds a Customer aggregate from persistence.
func ReconstructCustomer(
	id, firstName, lastName string,
	age int,
	phoneNumber string,
	monthlySalary, approvedLimit, currentDebt decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) Customer {
	return Customer{
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		age:           age,
		phoneNumber:   phoneNumber,
		monthlySalary: monthlySalary,
		approvedLimit: approvedLimit,
		currentDebt:   currentDebt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c Customer) ID() string                      { return c.id }
func (c Customer) FirstName() string               { return c.firstName }
func (c Customer) LastName() string                { return c.lastName }
func (c Customer) FullName() string                { return c.firstName + " " + c.lastName }
func (c Customer) Age() int                        { return c.age }
func (c Customer) PhoneNumber() string             { return c.phoneNumber }
func (c Customer) MonthlySalary() decimal.Decimal  { return c.monthlySalary }
func (c Customer) ApprovedLimit() decimal.Decimal  { return c.approvedLimit }
func (c Customer) CurrentDebt() decimal.Decimal    { return c.currentDebt }
func (c Customer) Version() int                    { return c.version }
func (c Customer) CreatedAt() time.Time            { return c.createdAt }
func (c Customer) UpdatedAt() time.Time            { return c.updatedAt }
func (c Customer) DomainEvents() []event.DomainEvent { return c.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (c Customer) ClearEvents() Customer {
	next := c
	next.domainEvents = nil
	return next
}
