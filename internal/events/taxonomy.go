// Package events defines the notifications a picker emits to its host and a
// synchronous bus that delivers them.
//
// The taxonomy provides:
//   - Canonical event type names
//   - Normalization of the alternate spellings hosts tend to use
//     ("selected_change", "selected-change" and "selectedChange" are the same event)
//
// Events are delivered in the order transitions happen. Every listener returns
// before the transition that emitted the event returns, so a listener never
// observes a later state than the one it was notified about.
package events

import "strings"

// Type is the canonical name of a picker event.
type Type string

// Canonical event types
const (
	// SelectedChange fires on every mutation of the selection.
	SelectedChange Type = "selectedChange"
	// Save fires when the user commits the selection.
	Save Type = "save"
	// CloseDialog fires when the user dismisses the picker.
	CloseDialog Type = "closeDialog"
)

// AllTypes returns all valid event types.
func AllTypes() map[Type]bool {
	return map[Type]bool{
		SelectedChange: true,
		Save:           true,
		CloseDialog:    true,
	}
}

// IsValidType checks if the given event type string is canonical.
func IsValidType(t string) bool {
	return AllTypes()[Type(t)]
}

// NormalizeType maps an event name to its canonical form.
// Returns the canonical type and true if known, or empty string and false.
func NormalizeType(name string) (Type, bool) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
	switch key {
	case "selectedchange", "change", "selected":
		return SelectedChange, true
	case "save", "commit", "committed":
		return Save, true
	case "closedialog", "close", "cancel":
		return CloseDialog, true
	default:
		return "", false
	}
}

// CarriesInstant reports whether events of type t carry an instant payload.
// CloseDialog carries only a boolean.
func CarriesInstant(t Type) bool {
	return t == SelectedChange || t == Save
}
