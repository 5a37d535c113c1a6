// Package apperrors defines the domain error kinds surfaced by the payment
// service. Handlers match them with errors.Is to pick the HTTP status.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("payment not found")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrFraudCheckUnavailable = errors.New("fraud check unavailable")
	ErrStoreUnavailable      = errors.New("payment store unavailable")
	ErrBusUnavailable        = errors.New("event bus unavailable")
)

// ValidationError carries one message per offending request field. It
// unwraps to ErrInvalidInput so callers can match the kind without caring
// about the field detail.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
