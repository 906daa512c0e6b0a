package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NotFoundError reports an unknown customer or account identifier.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError reports a violated input constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InsufficientFundsError reports a debit that would breach the account's
// minimum balance.
type InsufficientFundsError struct {
	AccountNumber  string
	Balance        decimal.Decimal
	Requested      decimal.Decimal
	MinimumBalance decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on account %s: balance %s minus %s would fall below minimum balance %s",
		e.AccountNumber, e.Balance.StringFixed(2), e.Requested.StringFixed(2), e.MinimumBalance.StringFixed(2))
}

// SchemaUnavailableError reports a missing or unloadable XSD. Callers branch
// on this to request a schema upload instead of reporting the document as
// invalid.
type SchemaUnavailableError struct {
	Path string
	Err  error
}

func (e *SchemaUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema unavailable at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("schema unavailable at %s", e.Path)
}

func (e *SchemaUnavailableError) Unwrap() error { return e.Err }

// MalformedDocumentError reports XML that failed well-formedness parsing.
// Schema checks are skipped when this is returned.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed XML document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }
