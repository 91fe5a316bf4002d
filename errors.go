package activestep

import (
	"fmt"
	"strings"
)

// FlagError is the base error type for all vocabulary and codec errors.
type FlagError struct {
	Name    string // Flag identifier the error refers to
	Message string // Error message
}

// Error implements the error interface.
func (e *FlagError) Error() string {
	return fmt.Sprintf("flag %q: %s", e.Name, e.Message)
}

// UnknownFlagError is returned when a name is not registered in the vocabulary.
type UnknownFlagError struct {
	FlagError
}

// Error implements the error interface.
func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown command flag %q", e.Name)
}

// DuplicateFlagError is returned when a name is registered again with a
// different value.
type DuplicateFlagError struct {
	FlagError
	Existing Commands // Value already registered under Name
	Value    Commands // Value that was rejected
}

// Error implements the error interface.
func (e *DuplicateFlagError) Error() string {
	return fmt.Sprintf("flag %q already registered as %s, refusing %s",
		e.Name, e.Existing, e.Value)
}

// FlagCollisionError is returned when a primitive flag claims a bit that is
// already owned by another primitive flag.
type FlagCollisionError struct {
	FlagError
	Owner string   // Primitive name that already owns the bit
	Bit   Commands // The contested bit
}

// Error implements the error interface.
func (e *FlagCollisionError) Error() string {
	return fmt.Sprintf("flag %q collides with %q on bit %s", e.Name, e.Owner, e.Bit)
}

// CompositeFlagError is returned when a composite flag references bits that
// no registered flag provides.
type CompositeFlagError struct {
	FlagError
	Missing Commands // Bits of the composite not covered by the vocabulary
}

// Error implements the error interface.
func (e *CompositeFlagError) Error() string {
	return fmt.Sprintf("composite flag %q uses unregistered bits %s", e.Name, e.Missing)
}

// InvalidFlagError is returned for malformed flag definitions.
type InvalidFlagError struct {
	FlagError
}

// StepDefinitionError reports a step document that could not be decoded.
type StepDefinitionError struct {
	Source     string // File name or other description of the input, if known
	Identifier string // Step identifier, if it was read before the failure
	Field      string // Offending field, if known
	Err        error  // Underlying cause
}

// Error implements the error interface.
func (e *StepDefinitionError) Error() string {
	var sb strings.Builder
	sb.WriteString("step definition")
	if e.Source != "" {
		fmt.Fprintf(&sb, " in %s", e.Source)
	}
	if e.Identifier != "" {
		fmt.Fprintf(&sb, " (step %q)", e.Identifier)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, " field %q", e.Field)
	}
	fmt.Fprintf(&sb, ": %v", e.Err)
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *StepDefinitionError) Unwrap() error { return e.Err }

// NewUnknownFlagError creates a new UnknownFlagError.
func NewUnknownFlagError(name string) *UnknownFlagError {
	return &UnknownFlagError{FlagError: FlagError{Name: name, Message: "not registered"}}
}

// NewDuplicateFlagError creates a new DuplicateFlagError.
func NewDuplicateFlagError(name string, existing, value Commands) *DuplicateFlagError {
	return &DuplicateFlagError{
		FlagError: FlagError{Name: name, Message: "already registered"},
		Existing:  existing,
		Value:     value,
	}
}

// NewFlagCollisionError creates a new FlagCollisionError.
func NewFlagCollisionError(name, owner string, bit Commands) *FlagCollisionError {
	return &FlagCollisionError{
		FlagError: FlagError{Name: name, Message: "bit already owned"},
		Owner:     owner,
		Bit:       bit,
	}
}

// NewCompositeFlagError creates a new CompositeFlagError.
func NewCompositeFlagError(name string, missing Commands) *CompositeFlagError {
	return &CompositeFlagError{
		FlagError: FlagError{Name: name, Message: "composite uses unregistered bits"},
		Missing:   missing,
	}
}

// NewInvalidFlagError creates a new InvalidFlagError.
func NewInvalidFlagError(name, message string) *InvalidFlagError {
	return &InvalidFlagError{FlagError: FlagError{Name: name, Message: message}}
}
