package validator

import (
	"errors"
	"fmt"
)

// ErrForm is the root marker for every error produced by this package.
// Boundary code catches the whole family with errors.Is(err, ErrForm)
// and maps it to a client-error response.
var ErrForm = errors.New("form error")

// ErrInvalidSession marks a missing or expired session detected while
// handling a form request. It carries no field context but belongs to
// the same family so a single handler can render it.
const ErrInvalidSession = sentinelError("invalid or missing session for request")

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

func (e sentinelError) Is(target error) bool { return target == ErrForm }

// FormKeyError reports a structurally required key absent from the
// submitted data.
type FormKeyError struct {
	Key string
}

func (e *FormKeyError) Error() string {
	return fmt.Sprintf("expected form key %q", e.Key)
}

func (e *FormKeyError) Is(target error) bool { return target == ErrForm }

// ValidationError reports a value rejected by a specific validator. It
// carries enough context to render a precise diagnostic: the key path,
// the offending value, the validator that rejected it, an optional
// human-readable message and an optional causal error.
type ValidationError struct {
	Key       string
	Value     any
	Validator Validator
	Message   string
	Err       error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %v failed %T", e.Key, e.Value, e.Validator)
	if e.Message != "" {
		msg += " (" + e.Message + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Is(target error) bool { return target == ErrForm }

func (e *ValidationError) Unwrap() error { return e.Err }

// reject builds the rejection error every rule in this package returns.
func reject(v Validator, key string, value any, message string) (any, error) {
	return nil, &ValidationError{Key: key, Value: value, Validator: v, Message: message}
}

// rejectCause is reject with a causal error attached, used when the
// rejection stems from a parse failure or a user callback.
func rejectCause(v Validator, key string, value any, cause error) (any, error) {
	return nil, &ValidationError{Key: key, Value: value, Validator: v, Err: cause}
}
