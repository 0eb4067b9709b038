package resource

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMalformedSpec indicates a resource string that does not follow key=amount[unit]
	ErrMalformedSpec = errors.New("malformed resource specification")

	// ErrUnknownResourceType indicates a resource name the cluster does not know about
	ErrUnknownResourceType = errors.New("unknown resource type")
)

// MalformedSpecError represents a syntax or unit error in a resource string
type MalformedSpecError struct {
	Token  string // Offending token as typed by the user
	Unit   string // Offending unit suffix, if the unit was the problem
	Reason string // Reason for parse failure
}

func (e *MalformedSpecError) Error() string {
	switch {
	case e.Unit != "" && e.Token != "":
		return fmt.Sprintf("invalid unit %q in %q: %s", e.Unit, e.Token, e.Reason)
	case e.Unit != "":
		return fmt.Sprintf("invalid unit %q: %s", e.Unit, e.Reason)
	}
	// an empty token is quoted too, so blank input still shows up as ""
	return fmt.Sprintf("%q is not a valid resource type/amount pair: %s", e.Token, e.Reason)
}

// Is allows errors.Is to match ErrMalformedSpec
func (e *MalformedSpecError) Is(target error) bool {
	return target == ErrMalformedSpec
}

// UnknownResourceTypeError represents a syntactically valid key that is not registered
type UnknownResourceTypeError struct {
	Name string // Canonical resource name after aliasing
}

func (e *UnknownResourceTypeError) Error() string {
	return fmt.Sprintf("unknown resource: %s", e.Name)
}

// Is allows errors.Is to match ErrUnknownResourceType
func (e *UnknownResourceTypeError) Is(target error) bool {
	return target == ErrUnknownResourceType
}

// NewMalformedSpecError creates a new MalformedSpecError
func NewMalformedSpecError(token string, reason string) *MalformedSpecError {
	return &MalformedSpecError{
		Token:  token,
		Reason: reason,
	}
}

// NewUnknownResourceTypeError creates a new UnknownResourceTypeError
func NewUnknownResourceTypeError(name string) *UnknownResourceTypeError {
	return &UnknownResourceTypeError{Name: name}
}

// IsMalformedSpec checks if an error is a MalformedSpecError
func IsMalformedSpec(err error) bool {
	var me *MalformedSpecError
	return errors.As(err, &me)
}

// IsUnknownResourceType checks if an error is an UnknownResourceTypeError
func IsUnknownResourceType(err error) bool {
	var ue *UnknownResourceTypeError
	return errors.As(err, &ue)
}
