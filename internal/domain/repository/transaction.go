package repository

import (
	"context"

	"github.com/polkiloo/fintrack/internal/domain/model"
)

// TransactionRepository describes persistence operations for income and
// expense records. Every read and write is scoped to an owner; no
// operation can touch another owner's records. Implementations decide
// the access path (scan-and-filter or an owner index) behind this
// interface. ListByOwner promises no particular ordering.
type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) error
	ListByOwner(ctx context.Context, owner string) ([]model.Transaction, error)
	// DeleteOwned removes the record only when both id and owner match,
	// as a single conditional operation. Returns ErrNotFound when no such
	// record exists, whether the id is unknown or belongs to someone else.
	DeleteOwned(ctx context.Context, owner, id string) error
	SummaryByOwner(ctx context.Context, owner string) (*model.Summary, error)
}
