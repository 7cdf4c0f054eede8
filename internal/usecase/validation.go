package usecase

import (
	"math"
	"strings"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
	"github.com/polkiloo/fintrack/internal/domain/model"
)

// ValidateAmount reports whether amount is a usable non-negative number.
func ValidateAmount(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount >= 0
}

// ValidateTransactionInput checks the creation payload: non-empty
// description, non-negative finite amount, known kind. Returns
// ErrInvalidInput on the first violation.
func ValidateTransactionInput(description string, amount float64, kind model.TransactionKind) error {
	if strings.TrimSpace(description) == "" {
		return domainErrors.ErrInvalidInput
	}
	if !ValidateAmount(amount) {
		return domainErrors.ErrInvalidInput
	}
	if !kind.Valid() {
		return domainErrors.ErrInvalidInput
	}
	return nil
}
