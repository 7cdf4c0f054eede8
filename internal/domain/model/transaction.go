package model

import "time"

// TransactionKind distinguishes money leaving from money entering.
type TransactionKind string

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
)

// Valid reports whether the kind is one of the known enum values.
func (k TransactionKind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// Transaction describes a single income or expense record. Owner is the
// username of the identity that created it and is the only identity
// allowed to see or delete it. Records are never mutated after creation.
type Transaction struct {
	ID          string
	Owner       string
	Description string
	Amount      float64
	Kind        TransactionKind
	CreatedAt   time.Time
}
