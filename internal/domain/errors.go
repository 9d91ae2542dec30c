// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and are mapped to the HTTP error
// envelope by the adapter boundary, never at the call site.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidPayload indicates the request payload was malformed or
	// failed required-field validation.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrBusinessRule indicates a domain rule constraint was violated.
	ErrBusinessRule = errors.New("business rule violation")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInternal indicates an unclassified internal failure.
	ErrInternal = errors.New("internal error")
)

// InvalidPayloadError carries field-level reasons for a rejected payload.
type InvalidPayloadError struct {
	// Fields maps a field path to the reason it failed.
	Fields map[string]string
}

// Error implements the error interface.
func (e *InvalidPayloadError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid payload"
	}

	return fmt.Sprintf("invalid payload: %d field(s) failed validation", len(e.Fields))
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidPayloadError) Unwrap() error {
	return ErrInvalidPayload
}

// NewInvalidPayloadError creates an invalid payload error with field reasons.
func NewInvalidPayloadError(fields map[string]string) error {
	return &InvalidPayloadError{Fields: fields}
}

// BusinessRuleError provides context for business rule violations.
// No rule in the current scope raises it, but the kind stays available
// so adapters map it consistently when one does.
type BusinessRuleError struct {
	Rule   string
	Reason string
}

// Error implements the error interface.
func (e *BusinessRuleError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("business rule %q violated: %s", e.Rule, e.Reason)
	}

	return fmt.Sprintf("business rule %q violated", e.Rule)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *BusinessRuleError) Unwrap() error {
	return ErrBusinessRule
}

// NewBusinessRuleError creates a business rule error with context.
func NewBusinessRuleError(rule, reason string) error {
	return &BusinessRuleError{Rule: rule, Reason: reason}
}

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     int64
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsInvalidPayload checks if an error is an invalid payload error.
func IsInvalidPayload(err error) bool {
	return errors.Is(err, ErrInvalidPayload)
}

// IsBusinessRule checks if an error is a business rule violation.
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrBusinessRule)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
