package usecase

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
	"github.com/polkiloo/fintrack/internal/domain/model"
	"github.com/polkiloo/fintrack/internal/domain/repository"
)

// TransactionUseCase encapsulates the per-owner record lifecycle.
type TransactionUseCase struct {
	transactions repository.TransactionRepository
}

// NewTransactionUseCase constructs TransactionUseCase.
func NewTransactionUseCase(transactions repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{transactions: transactions}
}

// Record validates and persists a new transaction stamped with the
// caller's identity as owner. The id is generated here, not by the
// store, so it is unique regardless of creation concurrency.
func (u *TransactionUseCase) Record(ctx context.Context, owner, description string, amount float64, kind model.TransactionKind) (*model.Transaction, error) {
	if err := ValidateTransactionInput(description, amount, kind); err != nil {
		return nil, err
	}

	t := &model.Transaction{
		ID:          uuid.NewString(),
		Owner:       owner,
		Description: description,
		Amount:      amount,
		Kind:        kind,
	}

	if err := u.transactions.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// ListByOwner returns every transaction belonging to owner and nothing
// else.
func (u *TransactionUseCase) ListByOwner(ctx context.Context, owner string) ([]model.Transaction, error) {
	return u.transactions.ListByOwner(ctx, owner)
}

// Delete removes the owner's transaction by id. A record that does not
// exist and a record owned by another identity produce the same
// ErrNotFound.
func (u *TransactionUseCase) Delete(ctx context.Context, owner, id string) error {
	if id == "" {
		return domainErrors.ErrNotFound
	}
	return u.transactions.DeleteOwned(ctx, owner, id)
}

// Summary aggregates the owner's transactions into totals.
func (u *TransactionUseCase) Summary(ctx context.Context, owner string) (*model.Summary, error) {
	return u.transactions.SummaryByOwner(ctx, owner)
}
