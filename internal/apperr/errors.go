package apperr

import (
	"errors"
	"fmt"
	"strings"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Name() string {
	return "ValidationError"
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// InvalidTableError reports an unrecognized table identifier. It is a fatal,
// caller-visible error raised before any retrieval happens.
type InvalidTableError struct {
	Table string
}

func (e *InvalidTableError) Error() string {
	return "invalid table: " + e.Table
}

func (e *InvalidTableError) Name() string {
	return "InvalidTableError"
}

// RetrievalError wraps a document store failure.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return "document store search failed: " + e.Err.Error()
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

func (e *RetrievalError) Name() string {
	return "RetrievalError"
}

// Describe renders an error as "ErrorName: detail" for boundaries that must
// return text instead of raising.
func Describe(err error) string {
	var named interface{ Name() string }
	if errors.As(err, &named) {
		return fmt.Sprintf("%s: %s", named.Name(), err.Error())
	}

	name := fmt.Sprintf("%T", err)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return fmt.Sprintf("%s: %s", name, err.Error())
}
