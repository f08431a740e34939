package timesheet

import "fmt"

// MissingProviderError is returned by New when a required collaborator is
// not supplied.
type MissingProviderError struct {
	Provider string
}

func (e *MissingProviderError) Error() string {
	return fmt.Sprintf("timesheet: no provider found for %s; pass one to timesheet.New", e.Provider)
}

// Is matches any MissingProviderError naming the same provider.
func (e *MissingProviderError) Is(target error) bool {
	t, ok := target.(*MissingProviderError)
	return ok && t.Provider == e.Provider
}

var (
	// ErrMissingDateAdapter means no date adapter was supplied.
	ErrMissingDateAdapter = &MissingProviderError{Provider: "DateAdapter"}
	// ErrMissingDateFormats means no display format set was supplied.
	ErrMissingDateFormats = &MissingProviderError{Provider: "DateFormats"}
)
