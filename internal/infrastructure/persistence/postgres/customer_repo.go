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
)

// CustomerRepo implements port.CustomerRepository.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepo creates a new PostgreSQL-backed customer repository.
func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Save persists a customer with optimistic locking on the version column.
func (r *CustomerRepo) Save(ctx context.Context, c model.Customer) error {
	query := `
		INSERT INTO customers (
			id, first_name, last_name, age, phone_number,
			monthly_salary, approved_limit, current_debt,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			first_name     = EXCLUDED.first_name,
			last_name      = EXCLUDED.last_name,
			age            = EXCLUDED.age,
			phone_number   = EXCLUDED.phone_number,
			monthly_salary = EXCLUDED.monthly_salary,
			current_debt   = EXCLUDED.current_debt,
			version        = customers.version + 1,
			updated_at     = EXCLUDED.updated_at
		WHERE customers.version = $9
	`
	tag, err := r.pool.Exec(ctx, query,
		c.ID(), c.FirstName(), c.LastName(), c.Age(), c.PhoneNumber(),
		c.MonthlySalary(), c.ApprovedLimit(), c.CurrentDebt(),
		c.Version(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on customer")
	}
	return nil
}

// FindByID retrieves a customer by ID.
func (r *CustomerRepo) FindByID(ctx context.Context, id string) (model.Customer, error) {
	query := `
		SELECT id, first_name, last_name, age, phone_number,
		       monthly_salary, approved_limit, current_debt,
		       version, created_at, updated_at
		FROM customers
		WHERE id = $1
	`
	var (
		cid, firstName, lastName, phoneNumber       string
		age, version                                int
		monthlySalary, approvedLimit, currentDebt   decimal.Decimal
		createdAt, updatedAt                        time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&cid, &firstName, &lastName, &age, &phoneNumber,
		&monthlySalary, &approvedLimit, &currentDebt,
		&version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, port.ErrCustomerNotFound
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("scan customer: %w", err)
	}

	return model.ReconstructCustomer(
		cid, firstName, lastName, age, phoneNumber,
		monthlySalary, approvedLimit, currentDebt,
		version, createdAt, updatedAt,
	), nil
}
