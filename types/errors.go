package types

import "fmt"

// InvalidKeyError indicates that a collection key could not be derived from a
// value passed where a key is required (Has, IndexOf, Remove, Not). Only
// strings and Identified members can yield keys.
type InvalidKeyError struct {
	Value any
}

// Error implements the error interface
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("cannot derive a key from value of type %T", e.Value)
}

// InvalidArgumentError indicates that an operation received an argument it
// cannot work with (e.g. an empty group field name, a non-positive page size).
type InvalidArgumentError struct {
	Op     string
	Reason string
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// InvalidGroupValueError indicates that a member's group discriminant
// resolved to an empty value. Grouping requires a non-empty discriminant for
// every member; it never silently drops members.
type InvalidGroupValueError struct {
	Key   string
	Field string
}

// Error implements the error interface
func (e *InvalidGroupValueError) Error() string {
	return fmt.Sprintf("cannot group member %q: field %q resolves to an empty value", e.Key, e.Field)
}
