package monitor

import (
	"testing"
	"time"

	"github.com/marcus/timesheet/internal/events"
	"github.com/marcus/timesheet/internal/timesheet"
)

func TestApplyClock(t *testing.T) {
	tests := []struct {
		name      string
		from      time.Time
		hour, min int
		maxEvents int
	}{
		{"forward", at(2024, time.January, 1, 8, 30), 10, 45, 2 + 15},
		{"backward is shorter", at(2024, time.January, 1, 1, 5), 23, 55, 2 + 10},
		{"already there", at(2024, time.January, 1, 14, 0), 14, 0, 0},
		{"across noon", at(2024, time.January, 1, 11, 59), 12, 1, 1 + 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, timesheet.Inputs[time.Time]{Selected: ref(tt.from)})
			count := 0
			m.picker.Subscribe(func(events.Event[time.Time]) { count++ })

			ApplyClock(m.picker, tt.hour, tt.min)

			got := m.picker.Selected()
			if got.Hour() != tt.hour || got.Minute() != tt.min {
				t.Errorf("Selected() = %02d:%02d, want %02d:%02d", got.Hour(), got.Minute(), tt.hour, tt.min)
			}
			if !sameDay(got, tt.from) {
				t.Errorf("ApplyClock changed the date: %v", got)
			}
			if count != tt.maxEvents {
				t.Errorf("%d steps, want %d", count, tt.maxEvents)
			}
			if m.picker.IsPM() != (tt.hour >= 12) {
				t.Errorf("IsPM() = %v at hour %d", m.picker.IsPM(), tt.hour)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := parseClock(" 07:45 ")
	if err != nil || h != 7 || m != 45 {
		t.Errorf("parseClock(07:45) = %d, %d, %v", h, m, err)
	}
	h, m, err = parseClock("")
	if err != nil || h != -1 || m != -1 {
		t.Errorf("parseClock(empty) = %d, %d, %v", h, m, err)
	}
	if _, _, err := parseClock("7pm"); err == nil {
		t.Error("parseClock(7pm) should fail")
	}
}

func TestResolveDate(t *testing.T) {
	min := at(2024, time.January, 5, 0, 0)
	sel := at(2024, time.January, 8, 9, 0)
	m := newTestModel(t, timesheet.Inputs[time.Time]{Selected: ref(sel), MinDate: &min})
	now := at(2024, time.January, 3, 9, 0)

	got, err := resolveDate(m.picker, "", now)
	if err != nil || !got.Equal(sel) {
		t.Errorf("resolveDate(empty) = %v, %v, want selection", got, err)
	}
	got, err = resolveDate(m.picker, "+3d", now)
	if err != nil || !sameDay(got, at(2024, time.January, 6, 0, 0)) {
		t.Errorf("resolveDate(+3d) = %v, %v", got, err)
	}
	if _, err := resolveDate(m.picker, "today", now); err == nil {
		t.Error("resolveDate(today) should fail before min date")
	}
	if _, err := resolveDate(m.picker, "whenever", now); err == nil {
		t.Error("resolveDate(whenever) should fail to parse")
	}
}

func TestWatchUnsubscribes(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{})
	before := m.picker.Listeners()

	out, unwatch := watch(m.picker)
	if m.picker.Listeners() != before+1 {
		t.Fatalf("Listeners() = %d, want %d", m.picker.Listeners(), before+1)
	}
	m.picker.Save()
	unwatch()

	if m.picker.Listeners() != before {
		t.Errorf("Listeners() = %d after unwatch, want %d", m.picker.Listeners(), before)
	}
	if !out.Saved {
		t.Error("outcome lost the save recorded before unwatch")
	}
	m.picker.Close()
	if out.Cancelled {
		t.Error("outcome updated after unwatch")
	}
}

func TestModelRelease(t *testing.T) {
	m := newTestModel(t, timesheet.Inputs[time.Time]{})
	if m.picker.Listeners() != 1 {
		t.Fatalf("Listeners() = %d, want 1", m.picker.Listeners())
	}

	again := NewModel(m.picker)
	again.Release()
	m.Release()
	if m.picker.Listeners() != 0 {
		t.Errorf("Listeners() = %d after Release, want 0", m.picker.Listeners())
	}
}
