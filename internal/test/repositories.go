package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
	"github.com/polkiloo/fintrack/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized map.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[string]*model.User)}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Users[username] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// TransactionRepositoryStub keeps records in-memory and allows tests to
// override individual operations.
type TransactionRepositoryStub struct {
	CreateFn      func(context.Context, *model.Transaction) error
	ListByOwnerFn func(context.Context, string) ([]model.Transaction, error)
	DeleteOwnedFn func(context.Context, string, string) error
	SummaryFn     func(context.Context, string) (*model.Summary, error)

	Items []model.Transaction
}

// Create appends the record unless an override is configured.
func (s *TransactionRepositoryStub) Create(ctx context.Context, t *model.Transaction) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, t)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	s.Items = append(s.Items, *t)
	return nil
}

// ListByOwner filters stored records by owner, the way the real store
// scopes every read.
func (s *TransactionRepositoryStub) ListByOwner(ctx context.Context, owner string) ([]model.Transaction, error) {
	if s.ListByOwnerFn != nil {
		return s.ListByOwnerFn(ctx, owner)
	}
	var result []model.Transaction
	for _, item := range s.Items {
		if item.Owner == owner {
			result = append(result, item)
		}
	}
	return result, nil
}

// DeleteOwned removes the record only when both id and owner match.
func (s *TransactionRepositoryStub) DeleteOwned(ctx context.Context, owner, id string) error {
	if s.DeleteOwnedFn != nil {
		return s.DeleteOwnedFn(ctx, owner, id)
	}
	for i, item := range s.Items {
		if item.ID == id && item.Owner == owner {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// SummaryByOwner aggregates stored records for owner.
func (s *TransactionRepositoryStub) SummaryByOwner(ctx context.Context, owner string) (*model.Summary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, owner)
	}
	var summary model.Summary
	for _, item := range s.Items {
		if item.Owner != owner {
			continue
		}
		switch item.Kind {
		case model.KindIncome:
			summary.Income += item.Amount
		case model.KindExpense:
			summary.Expense += item.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return &summary, nil
}
