package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/PRADEEP5967/credit-system/internal/domain/event"
	"github.com/PRADEEP5967/credit-system/internal/domain/model"
	"github.com/PRADEEP5967/credit-system/internal/domain/service"
)

type customerRepoMock struct {
	save     func(ctx context.Context, c model.Customer) error
	findByID func(ctx context.Context, id string) (model.Customer, error)
}

func (m *customerRepoMock) Save(ctx context.Context, c model.Customer) error {
	return m.save(ctx, c)
}

func (m *customerRepoMock) FindByID(ctx context.Context, id string) (model.Customer, error) {
	return m.findByID(ctx, id)
}

type loanRepoMock struct {
	findByID         func(ctx context.Context, id string) (model.Loan, error)
	findByCustomerID func(ctx context.Context, customerID string) ([]model.Loan, error)
}

func (m *loanRepoMock) FindByID(ctx context.Context, id string) (model.Loan, error) {
	return m.findByID(ctx, id)
}

func (m *loanRepoMock) FindByCustomerID(ctx context.Context, customerID string) ([]model.Loan, error) {
	return m.findByCustomerID(ctx, customerID)
}

type issuanceStoreMock struct {
	create func(ctx context.Context, loan model.Loan) error
}

func (m *issuanceStoreMock) CreateLoanAndIncreaseDebt(ctx context.Context, loan model.Loan) error {
	return m.create(ctx, loan)
}

type publisherMock struct {
	published []event.DomainEvent
	err       error
}

func (m *publisherMock) Publish(_ context.Context, events ...event.DomainEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, events...)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvaluator() *service.EligibilityEvaluator {
	return service.NewEligibilityEvaluator(
		service.NewCreditScorer(service.DefaultScoreWeights),
		service.NewPolicyEngine(service.DefaultRateBands, service.DefaultFloorRate),
	)
}
