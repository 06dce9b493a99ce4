// Package errors provides standardized error handling for phonefield.
// The field itself has no fatal error path (parse failures and lookup
// misses degrade silently), so the kinds here cover the surrounding
// machinery: configuration and CLI input.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Input error kinds
	InvalidInput
	UnknownCountry
)

// Common error constants
var (
	ErrInvalidConfig  = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrUnknownCountry = NewInputError("unknown country code", "", UnknownCountry, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// InputError represents errors in values supplied on the command line
type InputError struct {
	ApplicationError
	value string
}

// NewInputError creates a new input error
func NewInputError(msg string, value string, kind ErrorKind, err error) *InputError {
	return &InputError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		value: value,
	}
}

// Error returns the input error message
func (e *InputError) Error() string {
	if e.value != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.value, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.value)
	}
	return e.ApplicationError.Error()
}

// Value returns the offending input value
func (e *InputError) Value() string {
	return e.value
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an error with a message; wrapping nil returns nil
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an error with a formatted message; wrapping nil returns nil
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsInvalidConfig checks if the error indicates invalid configuration
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	return As(err, &configErr) && configErr.Kind() == InvalidConfig
}

// IsUnknownCountry checks if the error indicates an unrecognized country code
func IsUnknownCountry(err error) bool {
	var inputErr *InputError
	return As(err, &inputErr) && inputErr.Kind() == UnknownCountry
}
