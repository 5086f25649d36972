package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrValidation         = errors.New("validation failed")
	ErrPersistence        = errors.New("persistence failure")
)

// ValidationError carries per-field messages for a rejected input.
// errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f, msg := range e.Details {
		fields = append(fields, f+" "+msg)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validationErr(details map[string]string) error {
	return &ValidationError{Details: details}
}
