package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"invalid input", ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestSentinelErrorsDistinct(t *testing.T) {
	if stdErrors.Is(ErrNotFound, ErrAlreadyExists) {
		t.Fatal("sentinels must not alias each other")
	}
	if stdErrors.Is(ErrInvalidCredentials, ErrInvalidInput) {
		t.Fatal("sentinels must not alias each other")
	}
}
