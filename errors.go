package revaluation

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnregisteredAttribute happens when a raw value is requested (`raw_<name>`) for an
	// attribute that isn't declared as revaluable
	ErrUnregisteredAttribute = errors.New("attribute is not revaluable")
	// ErrUnknownValuator the valuator identifier isn't registered in the valuator registry
	ErrUnknownValuator = errors.New("unknown valuator")
	// ErrOperationNotInvocable the mutator operation does not exists on the valuator
	ErrOperationNotInvocable = errors.New("operation is not invocable")
	// ErrNoSuchMethod dynamic call doesn't match any accessor and the host has no fallback
	ErrNoSuchMethod = errors.New("no such method")
)

// Errors aggregates the errors of fluent calls
type Errors []error

// WalkErr calls cb for each error of errs and its causes, depth first, until cb
// returns true. Causes are read from `Err()`, `Cause()`, `Unwrap()` and aggregates.
func WalkErr(cb func(err error) (stop bool), errs ...error) (stop bool) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if cb(err) || WalkErr(cb, causes(err)...) {
			return true
		}
	}
	return false
}

func causes(err error) (result []error) {
	switch t := err.(type) {
	case Errors:
		return t
	case interface{ Errors() []error }:
		result = t.Errors()
	}
	if e, ok := err.(interface{ Err() error }); ok {
		result = append(result, e.Err())
	} else if e, ok := err.(interface{ Cause() error }); ok {
		result = append(result, e.Cause())
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		result = append(result, e.Unwrap())
	}
	return
}

func IsError(expected error, err ...error) (is bool) {
	return WalkErr(func(err error) (stop bool) {
		return err == expected
	}, err...)
}

// IsUnregisteredAttributeError returns current error has unregistered attribute error or not
func IsUnregisteredAttributeError(err error) bool {
	return IsError(ErrUnregisteredAttribute, err)
}

// IsOperationNotInvocableError returns current error has not invocable operation error or not
func IsOperationNotInvocableError(err error) bool {
	return IsError(ErrOperationNotInvocable, err)
}

func (errs Errors) Errors() []error {
	return errs
}

// Add appends the non nil errors, flattening aggregates
func (errs Errors) Add(newErrors ...error) Errors {
	for _, err := range newErrors {
		switch t := err.(type) {
		case nil:
		case Errors:
			errs = errs.Add(t...)
		default:
			errs = append(errs, err)
		}
	}
	return errs
}

func (errs Errors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// OperationError represents a failed mutator operation call
type OperationError struct {
	err       error
	Mutator   string
	Attribute string
	Operation string
}

// Err returns the original error
func (e OperationError) Err() error {
	return e.err
}

func (e OperationError) Unwrap() error {
	return e.err
}

func (e OperationError) Error() string {
	return fmt.Sprintf("mutator %q: operation %q on %q: %s", e.Mutator, e.Operation, e.Attribute, e.err.Error())
}
