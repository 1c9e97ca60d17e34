package calview

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/gregor/internal/timeline"
	"github.com/msto63/gregor/pkg/datetime"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModel_Navigation(t *testing.T) {
	today := datetime.MustDate(2024, time.March, 31)
	m := New(Options{Today: today, Timezone: datetime.UTC})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want datetime.Date
	}{
		{"next day crosses month", tea.KeyMsg{Type: tea.KeyRight}, datetime.MustDate(2024, time.April, 1)},
		{"prev day", keyRunes("h"), datetime.MustDate(2024, time.March, 31)},
		{"prev week", tea.KeyMsg{Type: tea.KeyUp}, datetime.MustDate(2024, time.March, 24)},
		{"next week", keyRunes("j"), datetime.MustDate(2024, time.March, 31)},
		{"next month clamps", keyRunes("]"), datetime.MustDate(2024, time.April, 30)},
		{"prev month", tea.KeyMsg{Type: tea.KeyPgUp}, datetime.MustDate(2024, time.March, 30)},
		{"today", keyRunes("t"), today},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ = update(t, m, tt.msg)
			if m.Cursor() != tt.want {
				t.Errorf("Cursor() = %v, want %v", m.Cursor(), tt.want)
			}
		})
	}
}

func TestModel_NavigateBeforeYearZero(t *testing.T) {
	m := New(Options{Today: datetime.MustDate(0, time.January, 5), Timezone: datetime.UTC})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	c := m.Cursor()
	if c.Year() != -1 || c.Month() != time.December || c.Day() != 29 {
		t.Fatalf("Cursor() = %d-%02d-%02d, want -1-12-29", c.Year(), int(c.Month()), c.Day())
	}
	if first := firstOfMonth(c); first.Year() != -1 || first.Month() != time.December || first.Day() != 1 {
		t.Errorf("firstOfMonth() = %v", first)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	if c := m.Cursor(); c.Year() != -1 || c.Month() != time.November || c.Day() != 29 {
		t.Errorf("Cursor() after prev month = %v", c)
	}
	if !strings.Contains(m.View(), "November -1") {
		t.Errorf("View() should show the month before year 0:\n%s", m.View())
	}
}

func TestModel_Quit(t *testing.T) {
	m := New(Options{Today: datetime.MustDate(2024, time.March, 1)})
	_, cmd := update(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_LoadsMarksPerMonth(t *testing.T) {
	ctx := context.Background()
	store := timeline.NewMemoryStore(nil)
	// 2024-03-01 02:00 UTC is still February 29 in EST
	if _, err := store.Add(ctx, "late night", datetime.MustDatetime(2024, time.March, 1, 2, 0, 0, 0, 0, 0, datetime.UTC)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := store.Add(ctx, "lunch", datetime.MustDatetime(2024, time.March, 12, 17, 0, 0, 0, 0, 0, datetime.UTC)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	m := New(Options{Today: datetime.MustDate(2024, time.March, 12), Timezone: datetime.EST, Store: store})
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() should load marks")
	}
	m, _ = update(t, m, cmd())

	if got := m.marks[datetime.MustDate(2024, time.March, 12)]; len(got) != 1 || got[0].Label != "lunch" {
		t.Errorf("marks on 03-12 = %v, want lunch", got)
	}
	if _, ok := m.marks[datetime.MustDate(2024, time.March, 1)]; ok {
		t.Error("late night mark belongs to February in EST")
	}
	if view := m.View(); !strings.Contains(view, "12:00  lunch") {
		t.Errorf("View() should list the selected day's mark:\n%s", view)
	}

	// leaving the month reloads; an old reply is dropped
	stale := cmd()
	m, cmd = update(t, m, keyRunes("["))
	if cmd == nil {
		t.Fatal("changing month should reload marks")
	}
	m, _ = update(t, m, stale)
	if len(m.marks) != 0 {
		t.Errorf("stale March reply was applied to February: %v", m.marks)
	}

	m, _ = update(t, m, cmd())
	if got := m.marks[datetime.MustDate(2024, time.February, 29)]; len(got) != 1 {
		t.Errorf("marks on 02-29 = %v, want late night", got)
	}
}

func TestModel_NoStore(t *testing.T) {
	m := New(Options{Today: datetime.MustDate(2024, time.March, 1)})
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() without a store should not load")
	}
	_, cmd := update(t, m, keyRunes("]"))
	if cmd != nil {
		t.Error("month change without a store should not load")
	}
	if !strings.Contains(m.View(), "no marks") {
		t.Error("View() should say there are no marks")
	}
}
