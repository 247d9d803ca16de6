package structs

import "fmt"

// ValidationError reports caller data that breaks a rule. Nothing is persisted when it is returned.
type ValidationError struct {
	Field  string
	Reason string
	// Malformed is set when the payload does not match the variant shape at all.
	Malformed bool
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// InternalError wraps a collaborator failure on an otherwise valid request.
type InternalError struct {
	Op  string
	Err error
}

func NewInternalError(op string, err error) *InternalError {
	return &InternalError{Op: op, Err: err}
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Op
	}

	return e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func (e *InternalError) String() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}
