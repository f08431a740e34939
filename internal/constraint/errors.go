package constraint

import "fmt"

// GuardError represents a failed guard check
type GuardError struct {
	GuardName string
	Reason    string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("guard %s failed: %s", e.GuardName, e.Reason)
}

// ValidationError wraps multiple guard failures
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors", len(e.Errors))
}

// Unwrap exposes the individual guard failures to errors.Is/As
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

// Add adds an error to the validation error
func (e *ValidationError) Add(err error) {
	e.Errors = append(e.Errors, err)
}

// HasErrors returns true if there are validation errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}
