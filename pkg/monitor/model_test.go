package monitor

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/timesheet/internal/dateadapter"
	"github.com/marcus/timesheet/internal/timesheet"
)

func at(y int, mo time.Month, d, h, mi int) time.Time {
	return time.Date(y, mo, d, h, mi, 0, 0, time.UTC)
}

func newTestModel(t *testing.T, in timesheet.Inputs[time.Time]) Model {
	t.Helper()
	adapter := &dateadapter.Native{
		Location: time.UTC,
		Now:      func() time.Time { return at(2024, time.January, 3, 9, 0) },
	}
	c, err := timesheet.New[time.Time](adapter, dateadapter.NativeFormats(), nil, in)
	if err != nil {
		t.Fatalf("timesheet.New() error = %v", err)
	}
	return NewModel(c)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys through Update and returns the final model and last command.
func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTimeKeys(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{Selected: ref(at(2024, time.January, 1, 8, 30))})

	m, cmd := press(t, m, runes("+"), runes("+"), runes(">"), runes("p"))
	if cmd != nil {
		t.Errorf("time keys returned a command")
	}
	want := at(2024, time.January, 1, 22, 31)
	if got := m.picker.Selected(); !got.Equal(want) {
		t.Errorf("Selected() = %v, want %v", got, want)
	}

	m, _ = press(t, m, runes("-"), runes("<"))
	want = at(2024, time.January, 1, 21, 30)
	if got := m.picker.Selected(); !got.Equal(want) {
		t.Errorf("Selected() = %v, want %v", got, want)
	}
}

func TestTimeKeysIgnoredWhenDateOnly(t *testing.T) {
	sel := at(2024, time.January, 1, 8, 30)
	m := newTestModel(t, timesheet.Inputs[time.Time]{Selected: ref(sel), HideTime: true})
	m, _ = press(t, m, runes("+"), runes("p"))
	if got := m.picker.Selected(); !got.Equal(sel) {
		t.Errorf("Selected() = %v, want unchanged", got)
	}
}

func TestNavigateAndPick(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{Selected: ref(at(2024, time.January, 1, 8, 30))})

	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	want := at(2024, time.January, 9, 8, 30)
	if got := m.picker.Selected(); !got.Equal(want) {
		t.Errorf("Selected() = %v, want %v", got, want)
	}

	m, _ = press(t, m, runes("]"), runes("h"), runes("k"))
	if got := m.picker.ActiveDate(); !sameDay(got, at(2024, time.February, 1, 0, 0)) {
		t.Errorf("ActiveDate() = %v, want Feb 1", got)
	}
}

func TestPickRefusedSetsStatus(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{
		Selected:   ref(at(2024, time.January, 1, 8, 30)),
		DateFilter: func(d time.Time) bool { return d.Day() != 2 },
	})
	m, _ = press(t, m, runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Status == "" {
		t.Error("refused pick should set a status message")
	}
	if !strings.Contains(m.View(), "date not available") {
		t.Error("View() should show the status")
	}
	m, _ = press(t, m, runes("l"))
	if m.Status != "" {
		t.Errorf("Status = %q, want cleared on next key", m.Status)
	}
}

func TestSaveQuits(t *testing.T) {
	sel := at(2024, time.January, 1, 8, 30)
	m := newTestModel(t, timesheet.Inputs[time.Time]{Selected: ref(sel)})

	m, cmd := press(t, m, runes("+"), runes("s"))
	if !isQuit(cmd) {
		t.Fatal("save should quit the program")
	}
	out := m.Outcome()
	if !out.Saved || out.Cancelled {
		t.Errorf("Outcome() = %+v", out)
	}
	if !out.Value.Equal(at(2024, time.January, 1, 9, 30)) {
		t.Errorf("saved value = %v", out.Value)
	}
}

func TestCloseQuits(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Fatal("esc should quit the program")
	}
	if out := m.Outcome(); !out.Cancelled || out.Saved {
		t.Errorf("Outcome() = %+v", out)
	}
}

func TestViewSwitchesSubViews(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{
		Selected:  ref(at(2024, time.January, 1, 8, 30)),
		CalHeight: 400,
	})

	calendar := ansi.Strip(m.View())
	for _, want := range []string{"Mon · Jan 1", "8:30 AM", "January 2024", "Su Mo Tu We Th Fr Sa"} {
		if !strings.Contains(calendar, want) {
			t.Errorf("calendar view missing %q:\n%s", want, calendar)
		}
	}

	m, _ = press(t, m, runes("t"))
	timeView := ansi.Strip(m.View())
	for _, want := range []string{"8 : 30", "Increase hour", "Toggle AM/PM"} {
		if !strings.Contains(timeView, want) {
			t.Errorf("time view missing %q:\n%s", want, timeView)
		}
	}
	if strings.Contains(timeView, "Su Mo Tu") {
		t.Error("time view should not show the calendar")
	}
}

func TestDateOnlyHeaderHasNoClock(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{Selected: ref(at(2024, time.January, 1, 8, 30)), HideTime: true})
	if strings.Contains(ansi.Strip(m.View()), "AM") {
		t.Error("date-only header should not show the clock")
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.Width != 100 || m.Height != 40 {
		t.Errorf("size = %dx%d", m.Width, m.Height)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 40 {
		t.Errorf("View() has %d lines, want 40", lines)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{})
	short := ansi.Strip(m.View())
	if strings.Contains(short, "previous week") {
		t.Error("short help should not list navigation keys")
	}
	m, _ = press(t, m, runes("?"))
	if !strings.Contains(ansi.Strip(m.View()), "previous week") {
		t.Error("full help should list navigation keys")
	}
}

func TestMonthDays(t *testing.T) {
	max := at(2024, time.January, 20, 0, 0)
	m := newTestModel(t, timesheet.Inputs[time.Time]{
		Selected: ref(at(2024, time.January, 5, 8, 0)),
		MaxDate:  &max,
	})
	days := m.monthDays(m.picker.ActiveDate())
	if len(days) != 31 {
		t.Fatalf("len = %d, want 31", len(days))
	}
	if !days[4].IsSelected || !days[4].IsActive {
		t.Errorf("day 5 = %+v, want selected and active", days[4])
	}
	if !days[2].IsToday {
		t.Errorf("day 3 = %+v, want today", days[2])
	}
	if !days[19].Selectable || days[20].Selectable {
		t.Errorf("max bound not applied: 20=%v 21=%v", days[19].Selectable, days[20].Selectable)
	}
}

func TestKeyMapAll(t *testing.T) {
	k := DefaultKeyMap()
	if got := len(k.All()); got != 16 {
		t.Errorf("All() has %d bindings, want 16", got)
	}
}
