package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates settings failed validation.
	ErrValidationFailed = errors.New("validation failed")

	// ErrStoreClosed indicates the store was used after Close.
	ErrStoreClosed = errors.New("store is closed")

	// ErrUnknownBackend indicates an unsupported store backend name.
	ErrUnknownBackend = errors.New("unknown store backend")
)

// ValidationErrorCode categorizes validation errors.
type ValidationErrorCode int

const (
	// CodeEmpty indicates a required value is empty.
	CodeEmpty ValidationErrorCode = iota + 1
	// CodeInvalidBoundary indicates a boundary is not a single character.
	CodeInvalidBoundary
	// CodeEmptyShortcut indicates a shortcut with an empty name.
	CodeEmptyShortcut
	// CodeShortcutBoundary indicates a shortcut name containing a boundary.
	CodeShortcutBoundary
	// CodeNegativeCount indicates a negative replacement count.
	CodeNegativeCount
)

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the setting that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
	// Code categorizes the validation error.
	Code ValidationErrorCode
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Path, e.Message, fmt.Sprint(e.Value))
}

// Unwrap makes every ValidationError match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
