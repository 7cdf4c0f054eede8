package handlers

import (
	"context"

	"github.com/polkiloo/fintrack/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (string, error)
}

// TransactionFacade encapsulates record operations exposed via HTTP.
type TransactionFacade interface {
	Record(ctx context.Context, owner, description string, amount float64, kind model.TransactionKind) (*model.Transaction, error)
	Transactions(ctx context.Context, owner string) ([]model.Transaction, error)
	Delete(ctx context.Context, owner, id string) error
	Summary(ctx context.Context, owner string) (*model.Summary, error)
}

// LedgerFacade aggregates the full set of operations used across handlers.
type LedgerFacade interface {
	AuthFacade
	TransactionFacade
}

// HealthChecker reports storage connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
