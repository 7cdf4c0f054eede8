package app

import (
	"context"

	"github.com/polkiloo/fintrack/internal/domain/model"
	"github.com/polkiloo/fintrack/internal/usecase"
)

// LedgerFacade aggregates the use cases behind a single surface the HTTP
// layer depends on.
type LedgerFacade struct {
	auth         *usecase.AuthUseCase
	transactions *usecase.TransactionUseCase
}

func NewLedgerFacade(auth *usecase.AuthUseCase, transactions *usecase.TransactionUseCase) *LedgerFacade {
	return &LedgerFacade{auth: auth, transactions: transactions}
}

func (f *LedgerFacade) Register(ctx context.Context, username, password string) (*model.User, error) {
	return f.auth.Register(ctx, username, password)
}

func (f *LedgerFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *LedgerFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *LedgerFacade) Record(ctx context.Context, owner, description string, amount float64, kind model.TransactionKind) (*model.Transaction, error) {
	return f.transactions.Record(ctx, owner, description, amount, kind)
}

func (f *LedgerFacade) Transactions(ctx context.Context, owner string) ([]model.Transaction, error) {
	return f.transactions.ListByOwner(ctx, owner)
}

func (f *LedgerFacade) Delete(ctx context.Context, owner, id string) error {
	return f.transactions.Delete(ctx, owner, id)
}

func (f *LedgerFacade) Summary(ctx context.Context, owner string) (*model.Summary, error) {
	return f.transactions.Summary(ctx, owner)
}
