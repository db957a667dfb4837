// Package orcherrors contains generic errors returned by code dealing with
// scheduling and submitting orchestrations. Callers should use errors.As to
// look for these types through chains of wrapped errors.
package orcherrors

import (
	"fmt"
)

// ErrInvalidArgument is a generic error to be returned on invalid argument.
// Message is optional and is omitted from the error message if not provided.
type ErrInvalidArgument struct {
	Name    string      // Name of the field referred to, e.g., "count"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message explaining why the value is invalid
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %q is invalid for field %q", err.Value, err.Name)
	}
	return fmt.Sprintf("value %q is invalid for field %q; %s", err.Value, err.Name, err.Message)
}

// ErrAlreadyExists is a generic error to be returned whenever some resource already exists.
// Type and Message are optional and are omitted from the error message if not provided.
type ErrAlreadyExists struct {
	Type    string // Resource type, e.g., "orchestration"
	Value   string // Resource name, e.g., an instance id
	Message string // An optional message to include in the error message
}

func (err *ErrAlreadyExists) Error() (s string) {
	if err.Type != "" {
		s = fmt.Sprintf("resource %q of type %q already exists", err.Value, err.Type)
	} else {
		s = fmt.Sprintf("resource %q already exists", err.Value)
	}
	if err.Message != "" {
		return s + fmt.Sprintf("; %s", err.Message)
	}
	return s
}

// ErrSubmissionRejected indicates that the execution engine refused to accept
// a new orchestration instance.
type ErrSubmissionRejected struct {
	InstanceId string // Instance the engine refused
	StatusCode int    // Wire-level status returned by the engine, if any
	Message    string // An optional message to include in the error message
}

func (err *ErrSubmissionRejected) Error() string {
	s := fmt.Sprintf("engine rejected submission of instance %q", err.InstanceId)
	if err.StatusCode != 0 {
		s += fmt.Sprintf(" with status %d", err.StatusCode)
	}
	if err.Message != "" {
		s += fmt.Sprintf("; %s", err.Message)
	}
	return s
}
