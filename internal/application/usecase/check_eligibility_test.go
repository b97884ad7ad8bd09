package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRADEEP5967/credit-system/internal/application/dto"
	"github.com/PRADEEP5967/credit-system/internal/domain/model"
	"github.com/PRADEEP5967/credit-system/internal/domain/port"
)

func reconstructCustomer(id string, salary int64) model.Customer {
	now := time.Now()
	monthly := decimal.NewFromInt(salary)
	return model.ReconstructCustomer(
		id, "Asha", "Iyer", 31, "9876543210",
		monthly, model.DeriveApprovedLimit(monthly), decimal.Zero,
		1, now, now,
	)
}

func TestCheckEligibility_ApprovedAtRequestedRate(t *testing.T) {
	customer := reconstructCustomer("cust-1", 100_000)
	customers := &customerRepoMock{
		findByID: func(_ context.Context, id string) (model.Customer, error) {
			assert.Equal(t, "cust-1", id)
			return customer, nil
		},
	}
	loans := &loanRepoMock{
		findByCustomerID: func(context.Context, string) ([]model.Loan, error) {
			return nil, nil
		},
	}
	uc := NewCheckEligibilityUseCase(customers, loans, testEvaluator(), testLogger())

	resp, err := uc.Execute(context.Background(), dto.CheckEligibilityRequest{
		CustomerID:   "cust-1",
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: 15,
		Tenure:       12,
	})

	require.NoError(t, err)
	assert.True(t, resp.Approval)
	assert.Equal(t, 15.0, resp.InterestRate)
	assert.Equal(t, 15.0, resp.CorrectedInterestRate)
	assert.Equal(t, "9025.83", resp.MonthlyInstallment.StringFixed(2))
	assert.Empty(t, resp.Reason)
}

func TestCheckEligibility_RejectedBelowBandMinimum(t *testing.T) {
	// An empty history scores 40, which lands in the band requiring a rate
	// above 12 percent.
	customers := &customerRepoMock{
		findByID: func(context.Context, string) (model.Customer, error) {
			return reconstructCustomer("cust-1", 100_000), nil
		},
	}
	loans := &loanRepoMock{
		findByCustomerID: func(context.Context, string) ([]model.Loan, error) {
			return nil, nil
		},
	}
	uc := NewCheckEligibilityUseCase(customers, loans, testEvaluator(), testLogger())

	resp, err := uc.Execute(context.Background(), dto.CheckEligibilityRequest{
		CustomerID:   "cust-1",
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: 10,
		Tenure:       12,
	})

	require.NoError(t, err)
	assert.False(t, resp.Approval)
	assert.Equal(t, 10.0, resp.InterestRate)
	assert.Equal(t, 12.0, resp.CorrectedInterestRate)
	// The installment is re-priced at the corrected rate.
	assert.Equal(t, "8884.88", resp.MonthlyInstallment.StringFixed(2))
	assert.Equal(t, "Loan not approved by policy", resp.Reason)
}

func TestCheckEligibility_AffordabilityVeto(t *testing.T) {
	// The installment on 100,000 at 12% over 12 months is 8,884.88, far above
	// half of a 10,000 salary.
	customers := &customerRepoMock{
		findByID: func(context.Context, string) (model.Customer, error) {
			return reconstructCustomer("cust-1", 10_000), nil
		},
	}
	loans := &loanRepoMock{
		findByCustomerID: func(context.Context, string) ([]model.Loan, error) {
			return nil, nil
		},
	}
	uc := NewCheckEligibilityUseCase(customers, loans, testEvaluator(), testLogger())

	resp, err := uc.Execute(context.Background(), dto.CheckEligibilityRequest{
		CustomerID:   "cust-1",
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: 12,
		Tenure:       12,
	})

	require.NoError(t, err)
	assert.False(t, resp.Approval)
	assert.Equal(t, 12.0, resp.CorrectedInterestRate, "the veto reports the requested rate")
	assert.Equal(t, "8884.88", resp.MonthlyInstallment.StringFixed(2))
	assert.Equal(t, "EMIs exceed 50% of monthly salary", resp.Reason)
}

func TestCheckEligibility_CustomerNotFound(t *testing.T) {
	customers := &customerRepoMock{
		findByID: func(context.Context, string) (model.Customer, error) {
			return model.Customer{}, port.ErrCustomerNotFound
		},
	}
	loans := &loanRepoMock{}
	uc := NewCheckEligibilityUseCase(customers, loans, testEvaluator(), testLogger())

	_, err := uc.Execute(context.Background(), dto.CheckEligibilityRequest{
		CustomerID:   "missing",
		LoanAmount:   decimal.NewFromInt(100_000),
		InterestRate: 12,
		Tenure:       12,
	})

	require.ErrorIs(t, err, port.ErrCustomerNotFound)
}

func TestCheckEligibility_InvalidRequest(t *testing.T) {
	uc := NewCheckEligibilityUseCase(&customerRepoMock{}, &loanRepoMock{}, testEvaluator(), testLogger())

	_, err := uc.Execute(context.Background(), dto.CheckEligibilityRequest{
		CustomerID:   "",
		LoanAmount:   decimal.Zero,
		InterestRate: -1,
		Tenure:       0,
	})

	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
}
