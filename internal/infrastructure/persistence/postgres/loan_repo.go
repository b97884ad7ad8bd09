package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/PRADEEP5967/credit-system/internal/domain/model"
	"github.com/PRADEEP5967/credit-system/internal/domain/port"
	"github.com/PRADEEP5967/credit-system/internal/domain/valueobject"
	pgdb "github.com/PRADEEP5967/credit-system/pkg/postgres"
)

// scannable abstracts pgx.Row and pgx.Rows for shared scan helpers.
type scannable interface {
	Scan(dest ...any) error
}

// LoanRepo implements port.LoanRepository and port.IssuanceStore.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

const loanColumns = `
	id, customer_id, principal, interest_rate, term_months,
	monthly_payment, emis_paid_on_time, start_date, end_date,
	status, version, created_at, updated_at
`

// FindByID retrieves a loan by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	loan, err := scanLoanRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, port.ErrLoanNotFound
	}
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

// FindByCustomerID retrieves the full loan history of a customer, newest
// first.
func (r *LoanRepo) FindByCustomerID(ctx context.Context, customerID string) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

// CreateLoanAndIncreaseDebt inserts the loan and adds its principal to the
// owning customer's current debt in one transaction.
func (r *LoanRepo) CreateLoanAndIncreaseDebt(ctx context.Context, loan model.Loan) error {
	return pgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO loans (` + loanColumns + `)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		`
		if _, err := tx.Exec(ctx, insert,
			loan.ID(), loan.CustomerID(), loan.Principal(), loan.InterestRate(), loan.TermMonths(),
			loan.MonthlyPayment(), loan.EMIsPaidOnTime(), loan.StartDate(), loan.EndDate(),
			loan.Status().String(), loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
		); err != nil {
			return fmt.Errorf("insert loan: %w", err)
		}

		update := `
			UPDATE customers
			SET current_debt = current_debt + $1,
			    version      = version + 1,
			    updated_at   = $2
			WHERE id = $3
		`
		tag, err := tx.Exec(ctx, update, loan.Principal(), loan.CreatedAt(), loan.CustomerID())
		if err != nil {
			return fmt.Errorf("increase customer debt: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return port.ErrCustomerNotFound
		}
		return nil
	})
}

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, customerID            string
		principal, monthlyPayment decimal.Decimal
		interestRate              float64
		termMonths, emisPaid      int
		startDate, endDate        time.Time
		statusStr                 string
		version                   int
		createdAt, updatedAt      time.Time
	)

	err := s.Scan(
		&id, &customerID, &principal, &interestRate, &termMonths,
		&monthlyPayment, &emisPaid, &startDate, &endDate,
		&statusStr, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, err
		}
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	return model.ReconstructLoan(
		id, customerID, principal, interestRate, termMonths,
		monthlyPayment, emisPaid, startDate, endDate,
		status, version, createdAt, updatedAt,
	), nil
}
