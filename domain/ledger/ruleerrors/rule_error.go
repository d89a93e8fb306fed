package ruleerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrWrongPreviousHash indicates a block's previous hash is not the
	// hash of the block it is validated against.
	ErrWrongPreviousHash = newRuleError("wrong previous hash")

	// ErrInvalidDifficulty indicates the binary expansion of a block's hash
	// doesn't start with the required difficulty prefix.
	ErrInvalidDifficulty = newRuleError("invalid difficulty")

	// ErrIDMismatch indicates a block's id doesn't follow the id of the
	// block it is validated against.
	ErrIDMismatch = newRuleError("id mismatch")

	// ErrInvalidHash indicates a block's stored hash is not the hash of its
	// own fields.
	ErrInvalidHash = newRuleError("invalid hash")
)

// RuleError identifies a rule violation. It is used to indicate that
// validation of a block failed due to one of the validation rules. The caller
// can use errors.Is against the values above, or errors.As, to determine
// which rule was violated.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// IsRuleError returns whether err is, or wraps, a RuleError.
func IsRuleError(err error) bool {
	var ruleError RuleError
	return errors.As(err, &ruleError)
}

// Reason returns the message of the RuleError wrapped by err, e.g.
// "invalid difficulty", or an empty string if err doesn't wrap one.
func Reason(err error) string {
	var ruleError RuleError
	if !errors.As(err, &ruleError) {
		return ""
	}
	return ruleError.message
}

// MalformedHashError indicates a block's stored hash is not valid hex. This
// is corrupt input rather than a failed rule, so it is not a RuleError.
type MalformedHashError struct {
	BlockID uint64
	Hash    string
	inner   error
}

func (e *MalformedHashError) Error() string {
	return fmt.Sprintf("block with id %d has a malformed hash %q: %s", e.BlockID, e.Hash, e.inner)
}

// Unwrap satisfies the errors.Unwrap interface
func (e *MalformedHashError) Unwrap() error {
	return e.inner
}

// NewMalformedHashError creates a new MalformedHashError with a stack trace
func NewMalformedHashError(blockID uint64, hash string, inner error) error {
	return errors.WithStack(&MalformedHashError{BlockID: blockID, Hash: hash, inner: inner})
}

// IsMalformedHashError returns whether err is, or wraps, a MalformedHashError.
func IsMalformedHashError(err error) bool {
	var malformedHashError *MalformedHashError
	return errors.As(err, &malformedHashError)
}

// InvalidUTF8Error indicates a hashed text field of a block is not valid
// UTF-8. Such a field has no canonical serialization, so like a malformed
// hash it is corrupt input and not a RuleError.
type InvalidUTF8Error struct {
	BlockID uint64
	Field   string
	Value   string
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("block with id %d has invalid UTF-8 in its %s: %q", e.BlockID, e.Field, e.Value)
}

// NewInvalidUTF8Error creates a new InvalidUTF8Error with a stack trace
func NewInvalidUTF8Error(blockID uint64, field string, value string) error {
	return errors.WithStack(&InvalidUTF8Error{BlockID: blockID, Field: field, Value: value})
}

// IsInvalidUTF8Error returns whether err is, or wraps, an InvalidUTF8Error.
func IsInvalidUTF8Error(err error) bool {
	var invalidUTF8Error *InvalidUTF8Error
	return errors.As(err, &invalidUTF8Error)
}
