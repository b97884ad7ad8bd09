package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRADEEP5967/credit-system/internal/domain/valueobject"
)

func validLoan(t *testing.T, now time.Time) Loan {
	t.Helper()
	loan, err := NewLoan("cust-1", decimal.NewFromInt(100_000), 15, 12, decimal.RequireFromString("9025.83"), now)
	require.NoError(t, err)
	return loan
}

func TestNewLoan(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	loan := validLoan(t, now)

	assert.NotEmpty(t, loan.ID())
	assert.Equal(t, "cust-1", loan.CustomerID())
	assert.Equal(t, valueobject.LoanStatusApproved, loan.Status())
	assert.Equal(t, 0, loan.EMIsPaidOnTime())
	assert.Equal(t, now.UTC(), loan.StartDate())
	assert.Equal(t, now.UTC().AddDate(0, 0, 360), loan.EndDate(), "12 months of 30 days each")

	events := loan.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "credit.loan.issued", events[0].EventType())
	assert.Equal(t, loan.ID(), events[0].AggregateID())
}

func TestNewLoan_Validation(t *testing.T) {
	now := time.Now()
	principal := decimal.NewFromInt(100_000)
	payment := decimal.NewFromInt(9_000)

	_, err := NewLoan("", principal, 15, 12, payment, now)
	assert.Error(t, err)

	_, err = NewLoan("cust-1", decimal.Zero, 15, 12, payment, now)
	assert.Error(t, err)

	_, err = NewLoan("cust-1", principal, -1, 12, payment, now)
	assert.Error(t, err)

	_, err = NewLoan("cust-1", principal, 15, 0, payment, now)
	assert.Error(t, err)

	_, err = NewLoan("cust-1", principal, 15, 12, decimal.Zero, now)
	assert.Error(t, err)
}

func TestLoan_IsActiveOn(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	loan := validLoan(t, now)
	end := loan.EndDate()

	assert.True(t, loan.IsActiveOn(now))
	assert.True(t, loan.IsActiveOn(end), "a loan is still active on its end date")
	assert.False(t, loan.IsActiveOn(end.AddDate(0, 0, 1)))
}

func TestLoan_RepaymentsLeft(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	loan := validLoan(t, start)

	assert.Equal(t, 12, loan.RepaymentsLeft(start))
	assert.Equal(t, 9, loan.RepaymentsLeft(start.AddDate(0, 3, 0)))
	assert.Equal(t, 0, loan.RepaymentsLeft(start.AddDate(0, 12, 0)))
	assert.Equal(t, 0, loan.RepaymentsLeft(start.AddDate(2, 0, 0)), "never negative")
	assert.Equal(t, 12, loan.RepaymentsLeft(start.AddDate(0, -1, 0)), "before the start the full term remains")
}

func TestLoan_RecordOnTimeEMI(t *testing.T) {
	now := time.Now()
	loan, err := NewLoan("cust-1", decimal.NewFromInt(10_000), 12, 2, decimal.NewFromInt(5_100), now)
	require.NoError(t, err)

	loan, err = loan.RecordOnTimeEMI(now)
	require.NoError(t, err)
	assert.Equal(t, 1, loan.EMIsPaidOnTime())

	loan, err = loan.RecordOnTimeEMI(now)
	require.NoError(t, err)
	assert.Equal(t, 2, loan.EMIsPaidOnTime())

	_, err = loan.RecordOnTimeEMI(now)
	assert.Error(t, err, "the counter is capped at the tenure")
}

func TestReconstructLoan_NoEvents(t *testing.T) {
	now := time.Now()
	loan := ReconstructLoan(
		"loan-1", "cust-1",
		decimal.NewFromInt(100_000), 15, 12,
		decimal.RequireFromString("9025.83"), 4,
		now, now.AddDate(0, 0, 360),
		valueobject.LoanStatusApproved,
		2, now, now,
	)

	assert.Equal(t, "loan-1", loan.ID())
	assert.Equal(t, 4, loan.EMIsPaidOnTime())
	assert.Equal(t, 2, loan.Version())
	assert.Empty(t, loan.DomainEvents(), "rehydration must not emit events")
}
