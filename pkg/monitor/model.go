// Package monitor hosts a timesheet picker in a terminal UI.
//
// The Model translates key presses into controller transitions and renders
// the controller's display projection. It plays the part of the embedding
// dialog: a Save or Close event from the controller ends the program, and the
// outcome is handed back to the caller of Run.
package monitor

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/timesheet/internal/events"
	"github.com/marcus/timesheet/internal/timesheet"
)

// Outcome is how the picker session ended.
type Outcome struct {
	// Saved is true when the user committed a value.
	Saved bool
	// Value is the committed selection. Zero unless Saved.
	Value time.Time
	// Cancelled is true when the user closed the picker.
	Cancelled bool
}

// Model is the bubbletea model for the picker.
type Model struct {
	picker *timesheet.Controller[time.Time]
	keys   KeyMap
	help   help.Model

	// outcome is shared with the controller listener, so it survives the
	// value copies bubbletea makes of Model.
	outcome *Outcome
	unwatch func()

	// Status is a one-line message, e.g. why a date pick was refused.
	Status string
	Width  int
	Height int
}

// NewModel wraps a controller. The model subscribes to the controller's save
// and close events until Release is called.
func NewModel(picker *timesheet.Controller[time.Time]) Model {
	outcome, unwatch := watch(picker)
	return Model{
		picker:  picker,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		outcome: outcome,
		unwatch: unwatch,
	}
}

// Release unsubscribes the model from its controller. The outcome recorded so
// far stays readable.
func (m Model) Release() {
	m.unwatch()
}

// Outcome returns how the session ended so far.
func (m Model) Outcome() Outcome {
	return *m.outcome
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Status = ""
	p := m.picker

	switch {
	case key.Matches(msg, m.keys.Close):
		p.Close()
	case key.Matches(msg, m.keys.Save):
		p.Save()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.TimeView):
		p.ToggleTimeView()
	case key.Matches(msg, m.keys.PrevMonth):
		p.MoveActiveMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		p.MoveActiveMonth(1)
	case key.Matches(msg, m.keys.Left):
		p.MoveActiveDate(-1)
	case key.Matches(msg, m.keys.Right):
		p.MoveActiveDate(1)
	case key.Matches(msg, m.keys.Up):
		p.MoveActiveDate(-7)
	case key.Matches(msg, m.keys.Down):
		p.MoveActiveDate(7)
	case key.Matches(msg, m.keys.Pick):
		if !p.PickActiveDate() {
			m.Status = "date not available"
			if err := p.Evaluator().Explain(ref(p.ActiveDate())); err != nil {
				slog.Debug("pick refused", "date", p.ActiveDate(), "err", err)
			}
		}
	default:
		if p.Mode() == timesheet.TimeAndCalendar {
			m.handleTimeKey(msg)
		}
	}

	if m.outcome.Saved || m.outcome.Cancelled {
		return m, tea.Quit
	}
	return m, nil
}

// handleTimeKey applies the time controls. They work from either sub-view.
func (m *Model) handleTimeKey(msg tea.KeyMsg) {
	p := m.picker
	switch {
	case key.Matches(msg, m.keys.HourUp):
		p.IncreaseHour()
	case key.Matches(msg, m.keys.HourDown):
		p.DecreaseHour()
	case key.Matches(msg, m.keys.MinuteUp):
		p.IncreaseMinute()
	case key.Matches(msg, m.keys.MinuteDown):
		p.DecreaseMinute()
	case key.Matches(msg, m.keys.AMPM):
		p.TogglePM()
	}
}

// Run starts a full-screen program for picker and blocks until the user saves
// or closes. Extra options are applied after tea.WithAltScreen.
func Run(picker *timesheet.Controller[time.Time], opts ...tea.ProgramOption) (Outcome, error) {
	unsubscribe := picker.Subscribe(LogEvents)
	defer unsubscribe()

	m := NewModel(picker)
	defer m.Release()
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return Outcome{}, err
	}
	return final.(Model).Outcome(), nil
}

// LogEvents is a listener that logs every picker event at debug level.
func LogEvents(ev events.Event[time.Time]) {
	if events.CarriesInstant(ev.Type) {
		slog.Debug("picker event", "type", ev.Type, "instant", ev.Instant)
		return
	}
	slog.Debug("picker event", "type", ev.Type, "close", ev.Close)
}

func ref(t time.Time) *time.Time { return &t }
