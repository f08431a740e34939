// Package intl holds the label strings shown on the picker's controls.
package intl

import "sort"

// LabelID identifies a control label.
type LabelID string

// Fixed label identifiers
const (
	IncreaseHour   LabelID = "increaseHour"
	DecreaseHour   LabelID = "decreaseHour"
	IncreaseMinute LabelID = "increaseMinute"
	DecreaseMinute LabelID = "decreaseMinute"
	AMPM           LabelID = "ampm"
	Save           LabelID = "save"
	Cancel         LabelID = "cancel"
)

// AllLabels returns every label id in display order.
func AllLabels() []LabelID {
	return []LabelID{IncreaseHour, DecreaseHour, IncreaseMinute, DecreaseMinute, AMPM, Save, Cancel}
}

// Phrases is a table of label strings keyed by id.
type Phrases map[LabelID]string

// Default returns the English phrase table.
func Default() Phrases {
	return Phrases{
		IncreaseHour:   "Increase hour",
		DecreaseHour:   "Decrease hour",
		IncreaseMinute: "Increase minute",
		DecreaseMinute: "Decrease minute",
		AMPM:           "Toggle AM/PM",
		Save:           "Save",
		Cancel:         "Cancel",
	}
}

// Label returns the phrase for id, or "" when the table has none.
func (p Phrases) Label(id LabelID) string {
	return p[id]
}

// With returns a copy of p with the non-empty entries of overrides applied.
// Override keys are plain strings so they can come straight from config.
func (p Phrases) With(overrides map[string]string) Phrases {
	out := make(Phrases, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		if v != "" {
			out[LabelID(k)] = v
		}
	}
	return out
}

// Unknown returns the override keys that are not known label ids, sorted.
func Unknown(overrides map[string]string) []string {
	known := make(map[LabelID]bool)
	for _, id := range AllLabels() {
		known[id] = true
	}
	var out []string
	for k := range overrides {
		if !known[LabelID(k)] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
