// Package errors provides error types with actionable suggestions for
// nestlist. Errors carry context to help users resolve issues quickly.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrTree indicates a tree file could not be read or written.
	ErrTree = errors.New("tree error")
	// ErrEmptyRoot indicates the root list has no items to navigate.
	ErrEmptyRoot = errors.New("no items in root list")
	// ErrTerminal indicates the interactive terminal could not be used.
	ErrTerminal = errors.New("terminal error")
	// ErrScript indicates a malformed replay script.
	ErrScript = errors.New("script error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// NestError is the base error type for nestlist errors.
// It wraps an underlying error and provides additional context.
type NestError struct {
	// Kind is the category of error (e.g., ErrTree, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, line number).
	Details map[string]string
}

// Error implements the error interface.
func (e *NestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *NestError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches target.
func (e *NestError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a multi-line message with details and suggestion, for
// printing to the user.
func (e *NestError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *NestError) WithDetails(key, value string) *NestError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *NestError) WithCause(cause error) *NestError {
	e.Cause = cause
	return e
}

// New creates a new NestError with the given kind and message.
func New(kind error, message string) *NestError {
	return &NestError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *NestError {
	return &NestError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *NestError {
	return &NestError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// As reports whether err is, or wraps, a *NestError and returns it.
func As(err error) (*NestError, bool) {
	var ne *NestError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}

// Is is errors.Is, re-exported so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
