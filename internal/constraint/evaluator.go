// Package constraint decides whether a candidate date may be selected, given an
// optional minimum, maximum and filter predicate.
//
// Each constraint is a Guard. An absent constraint always passes, so a zero
// Evaluator accepts every non-nil date. A bound without a Compare func counts
// as absent. Nothing is cached: every call
// re-evaluates every guard against the current constraint values.
package constraint

// Evaluator combines the min/max bounds and the optional filter.
type Evaluator[D any] struct {
	MinDate *D
	MaxDate *D
	Filter  func(D) bool
	// Compare orders two dates; required when MinDate or MaxDate is set.
	Compare func(a, b D) int
}

// Guards returns the guards in evaluation order.
func (e *Evaluator[D]) Guards() []Guard[D] {
	return []Guard[D]{
		&PresenceGuard[D]{},
		&FilterGuard[D]{Filter: e.Filter},
		&MinDateGuard[D]{Min: e.MinDate, Compare: e.Compare},
		&MaxDateGuard[D]{Max: e.MaxDate, Compare: e.Compare},
	}
}

// IsSelectable reports whether date passes every guard.
func (e *Evaluator[D]) IsSelectable(date *D) bool {
	for _, g := range e.Guards() {
		if !g.Check(date).Passed {
			return false
		}
	}
	return true
}

// Explain runs every guard and returns a *ValidationError describing each
// failure, or nil when the date is selectable.
func (e *Evaluator[D]) Explain(date *D) error {
	verr := &ValidationError{}
	for _, g := range e.Guards() {
		if res := g.Check(date); !res.Passed {
			verr.Add(&GuardError{GuardName: g.Name(), Reason: res.Message})
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
