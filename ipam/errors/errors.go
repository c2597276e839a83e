package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

type errInvalidArgument struct {
	cause string
}

// ErrInvalidArgument creates an error indicating that a caller passed an
// empty, nil or otherwise unusable value where a real one was required.
func ErrInvalidArgument(cause string, args ...interface{}) error {
	if len(args) != 0 {
		return errInvalidArgument{cause: fmt.Sprintf(cause, args...)}
	}
	return errInvalidArgument{cause: cause}
}

// Error returns a formatted error message
func (e errInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: %v", e.cause)
}

// IsErrInvalidArgument returns true if this error is a result of an invalid
// argument
func IsErrInvalidArgument(e error) bool {
	_, ok := pkgerrors.Cause(e).(errInvalidArgument)
	return ok
}

type errNotFound struct {
	objectType string
	id         string
}

// ErrNotFound creates an error indicating that the object of the given type
// and identifier is not present in the store.
func ErrNotFound(objectType, id string) error {
	return errNotFound{objectType: objectType, id: id}
}

// Error returns a formatted error message
func (e errNotFound) Error() string {
	return fmt.Sprintf("%v %v not found", e.objectType, e.id)
}

// IsErrNotFound returns true if this error is a result of a missing object
func IsErrNotFound(e error) bool {
	_, ok := pkgerrors.Cause(e).(errNotFound)
	return ok
}

type errAlreadyExists struct {
	objectType string
	id         string
}

// ErrAlreadyExists creates an error indicating that an object with the same
// identity is already stored.
func ErrAlreadyExists(objectType, id string) error {
	return errAlreadyExists{objectType: objectType, id: id}
}

// Error returns a formatted error message
func (e errAlreadyExists) Error() string {
	return fmt.Sprintf("%v %v already exists", e.objectType, e.id)
}

// IsErrAlreadyExists returns true if this error is a result of a duplicate
// object
func IsErrAlreadyExists(e error) bool {
	_, ok := pkgerrors.Cause(e).(errAlreadyExists)
	return ok
}

type errBadState struct {
	cause string
}

// ErrBadState creates an error indicating that stored state is inconsistent,
// for example a persisted row whose blob column is not valid JSON.
func ErrBadState(cause string, args ...interface{}) error {
	if len(args) != 0 {
		return errBadState{cause: fmt.Sprintf(cause, args...)}
	}
	return errBadState{cause: cause}
}

// Error returns a formatted error message
func (e errBadState) Error() string {
	return fmt.Sprintf("an invalid state was encountered: %v", e.cause)
}

// IsErrBadState returns true if this error is a result of bad stored state
func IsErrBadState(e error) bool {
	_, ok := pkgerrors.Cause(e).(errBadState)
	return ok
}

type errInvalidConfig struct {
	option string
	cause  string
}

// ErrInvalidConfig creates an error indicating that a configuration option
// holds a value the mapping layer cannot work with.
func ErrInvalidConfig(option, cause string, args ...interface{}) error {
	if len(args) != 0 {
		return errInvalidConfig{option: option, cause: fmt.Sprintf(cause, args...)}
	}
	return errInvalidConfig{option: option, cause: cause}
}

// Error returns a formatted error message
func (e errInvalidConfig) Error() string {
	return fmt.Sprintf("config option %v is invalid: %v", e.option, e.cause)
}

// IsErrInvalidConfig returns true if this error is a result of an invalid
// configuration value
func IsErrInvalidConfig(e error) bool {
	_, ok := pkgerrors.Cause(e).(errInvalidConfig)
	return ok
}
