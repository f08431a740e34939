package monitor

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the picker's key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	Pick       key.Binding
	TimeView   key.Binding
	HourUp     key.Binding
	HourDown   key.Binding
	MinuteUp   key.Binding
	MinuteDown key.Binding
	AMPM       key.Binding
	Save       key.Binding
	Close      key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous week")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous month")),
		NextMonth:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Pick:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick date")),
		TimeView:   key.NewBinding(key.WithKeys("t", "tab"), key.WithHelp("t", "calendar/time")),
		HourUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "hour +1")),
		HourDown:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "hour -1")),
		MinuteUp:   key.NewBinding(key.WithKeys(">", "."), key.WithHelp(">", "minute +1")),
		MinuteDown: key.NewBinding(key.WithKeys("<", ","), key.WithHelp("<", "minute -1")),
		AMPM:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle AM/PM")),
		Save:       key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Close:      key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "close")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.TimeView, k.Save, k.Close, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.PrevMonth, k.NextMonth},
		{k.Pick, k.TimeView, k.HourUp, k.HourDown, k.MinuteUp, k.MinuteDown, k.AMPM},
		{k.Save, k.Close, k.Help},
	}
}

// All returns every binding in FullHelp order.
func (k KeyMap) All() []key.Binding {
	var out []key.Binding
	for _, col := range k.FullHelp() {
		out = append(out, col...)
	}
	return out
}
