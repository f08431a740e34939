package constraint

// GuardResult is the outcome of a single guard check
type GuardResult struct {
	Passed  bool
	Message string
}

// Guard checks one constraint against a candidate date
type Guard[D any] interface {
	Name() string
	Check(date *D) GuardResult
}

// PresenceGuard rejects a missing candidate
type PresenceGuard[D any] struct{}

func (g *PresenceGuard[D]) Name() string {
	return "PresenceGuard"
}

func (g *PresenceGuard[D]) Check(date *D) GuardResult {
	if date == nil {
		return GuardResult{Passed: false, Message: "no date given"}
	}
	return GuardResult{Passed: true}
}

// FilterGuard applies the caller's selectability predicate
type FilterGuard[D any] struct {
	Filter func(D) bool
}

func (g *FilterGuard[D]) Name() string {
	return "FilterGuard"
}

func (g *FilterGuard[D]) Check(date *D) GuardResult {
	// No filter means no constraint
	if g.Filter == nil || date == nil {
		return GuardResult{Passed: true}
	}
	if !g.Filter(*date) {
		return GuardResult{Passed: false, Message: "date is excluded by filter"}
	}
	return GuardResult{Passed: true}
}

// MinDateGuard rejects dates earlier than Min. Without a Compare it passes.
type MinDateGuard[D any] struct {
	Min     *D
	Compare func(a, b D) int
}

func (g *MinDateGuard[D]) Name() string {
	return "MinDateGuard"
}

func (g *MinDateGuard[D]) Check(date *D) GuardResult {
	if g.Min == nil || g.Compare == nil || date == nil {
		return GuardResult{Passed: true}
	}
	if g.Compare(*date, *g.Min) < 0 {
		return GuardResult{Passed: false, Message: "date is before the minimum date"}
	}
	return GuardResult{Passed: true}
}

// MaxDateGuard rejects dates later than Max. Without a Compare it passes.
type MaxDateGuard[D any] struct {
	Max     *D
	Compare func(a, b D) int
}

func (g *MaxDateGuard[D]) Name() string {
	return "MaxDateGuard"
}

func (g *MaxDateGuard[D]) Check(date *D) GuardResult {
	if g.Max == nil || g.Compare == nil || date == nil {
		return GuardResult{Passed: true}
	}
	if g.Compare(*date, *g.Max) > 0 {
		return GuardResult{Passed: false, Message: "date is after the maximum date"}
	}
	return GuardResult{Passed: true}
}
