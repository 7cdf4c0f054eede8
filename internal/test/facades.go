package test

import (
	"context"

	"github.com/polkiloo/fintrack/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (string, error)
}

// Register returns a user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, username, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password)
	}
	return &model.User{Username: username}, nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return "token", nil
}

// ParseToken returns the stored identity for the authenticated caller.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "alice", nil
}

// TransactionFacadeStub provides controllable behaviour for record
// endpoints.
type TransactionFacadeStub struct {
	RecordFn       func(context.Context, string, string, float64, model.TransactionKind) (*model.Transaction, error)
	TransactionsFn func(context.Context, string) ([]model.Transaction, error)
	DeleteFn       func(context.Context, string, string) error
	SummaryFn      func(context.Context, string) (*model.Summary, error)
}

// Record delegates to provided function or returns a default record.
func (s TransactionFacadeStub) Record(ctx context.Context, owner, description string, amount float64, kind model.TransactionKind) (*model.Transaction, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, owner, description, amount, kind)
	}
	return &model.Transaction{ID: "generated-id", Owner: owner, Description: description, Amount: amount, Kind: kind}, nil
}

// Transactions returns predefined records for given owner.
func (s TransactionFacadeStub) Transactions(ctx context.Context, owner string) ([]model.Transaction, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, owner)
	}
	return []model.Transaction{{ID: "id-1", Owner: owner, Description: "Coffee", Amount: 4.5, Kind: model.KindExpense}}, nil
}

// Delete executes configured deletion handler.
func (s TransactionFacadeStub) Delete(ctx context.Context, owner, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, owner, id)
	}
	return nil
}

// Summary returns preconfigured totals.
func (s TransactionFacadeStub) Summary(ctx context.Context, owner string) (*model.Summary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, owner)
	}
	return &model.Summary{Income: 10, Expense: 4, Balance: 6}, nil
}

// HealthStub reports configurable storage health.
type HealthStub struct {
	Err error
}

// HealthCheck returns the configured probe result.
func (s HealthStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// LedgerFacadeStub aggregates facade dependencies for HTTP layer tests.
type LedgerFacadeStub struct {
	AuthFacadeStub
	TransactionFacadeStub
}
