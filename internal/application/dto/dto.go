package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// RegisterCustomerRequest carries the data needed to onboard a customer.
type RegisterCustomerRequest struct {
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Age           int             `json:"age"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	PhoneNumber   string          `json:"phone_number"`
}

// Validate checks the request shape before any computation.
func (r RegisterCustomerRequest) Validate() error {
	var v ValidationError
	if r.FirstName == "" {
		v.add("first_name", "is required")
	}
	if r.LastName == "" {
		v.add("last_name", "is required")
	}
	if r.Age <= 0 {
		v.add("age", "must be positive")
	}
	if r.MonthlyIncome.IsNegative() {
		v.add("monthly_income", "must not be negative")
	}
	if r.PhoneNumber == "" {
		v.add("phone_number", "is required")
	}
	return v.orNil()
}

// CheckEligibilityRequest carries the terms of a prospective loan.
type CheckEligibilityRequest struct {
	CustomerID   string          `json:"customer_id"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	InterestRate float64         `json:"interest_rate"`
	Tenure       int             `json:"tenure"`
}

// Validate checks the request shape before any computation.
func (r CheckEligibilityRequest) Validate() error {
	var v ValidationError
	if r.CustomerID == "" {
		v.add("customer_id", "is required")
	}
	if r.LoanAmount.LessThanOrEqual(decimal.Zero) {
		v.add("loan_amount", "must be positive")
	}
	if r.InterestRate < 0 {
		v.add("interest_rate", "must not be negative")
	}
	if r.Tenure <= 0 {
		v.add("tenure", "must be positive")
	}
	return v.orNil()
}

// CreateLoanRequest carries the terms of a loan to issue. The shape is the
// same as an eligibility check; issuance runs the identical decision first.
type CreateLoanRequest struct {
	CustomerID   string          `json:"customer_id"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	InterestRate float64         `json:"interest_rate"`
	Tenure       int             `json:"tenure"`
}

// Validate checks the request shape before any computation.
func (r CreateLoanRequest) Validate() error {
	return CheckEligibilityRequest(r).Validate()
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// ListCustomerLoansRequest identifies a customer whose loans to list.
type ListCustomerLoansRequest struct {
	CustomerID string `json:"customer_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// RegisterCustomerResponse is the external representation of an onboarded
// customer.
type RegisterCustomerResponse struct {
	CustomerID    string          `json:"customer_id"`
	Name          string          `json:"name"`
	Age           int             `json:"age"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	ApprovedLimit decimal.Decimal `json:"approved_limit"`
	PhoneNumber   string          `json:"phone_number"`
}

// CheckEligibilityResponse is the external representation of an eligibility
// decision.
type CheckEligibilityResponse struct {
	CustomerID            string          `json:"customer_id"`
	Approval              bool            `json:"approval"`
	InterestRate          float64         `json:"interest_rate"`
	CorrectedInterestRate float64         `json:"corrected_interest_rate"`
	Tenure                int             `json:"tenure"`
	MonthlyInstallment    decimal.Decimal `json:"monthly_installment"`
	Reason                string          `json:"reason,omitempty"`
}

// CreateLoanResponse reports the outcome of a loan issuance.
type CreateLoanResponse struct {
	LoanID             string          `json:"loan_id,omitempty"`
	CustomerID         string          `json:"customer_id"`
	LoanApproved       bool            `json:"loan_approved"`
	Message            string          `json:"message"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

// CustomerSummary is the customer projection embedded in loan views.
type CustomerSummary struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

// LoanResponse is the read-only projection of a stored loan.
type LoanResponse struct {
	LoanID             string          `json:"loan_id"`
	Customer           CustomerSummary `json:"customer"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       float64         `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	Tenure             int             `json:"tenure"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	Status             string          `json:"status"`
}

// CustomerLoanItem is one row of a customer's loan listing.
type CustomerLoanItem struct {
	LoanID             string          `json:"loan_id"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       float64         `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	RepaymentsLeft     int             `json:"repayments_left"`
}

// ListCustomerLoansResponse lists a customer's loans.
type ListCustomerLoansResponse struct {
	CustomerID string             `json:"customer_id"`
	Loans      []CustomerLoanItem `json:"loans"`
}
