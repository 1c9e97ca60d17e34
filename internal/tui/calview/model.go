// ============================================================================
// gregor - Gregorian calendar values
// ============================================================================
//
// Package:     calview
// Description: Bubbletea month calendar with timeline marks
// Author:      Mike Stoffels
// Created:     2025-08-19
// License:     MIT
// ============================================================================

package calview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/gregor/internal/timeline"
	"github.com/msto63/gregor/pkg/datetime"
)

// loadTimeout bounds a single month query
const loadTimeout = 5 * time.Second

// Options configures a calendar model
type Options struct {
	// Today is flagged in the grid and is where the cursor starts
	Today datetime.Date

	// Timezone decides which calendar day a mark falls on
	Timezone datetime.Timezone

	// Store supplies marks; nil shows an empty calendar
	Store timeline.Store
}

// Model is the Bubbletea model of the month calendar
type Model struct {
	cursor datetime.Date
	today  datetime.Date
	tz     datetime.Timezone
	store  timeline.Store

	// marks of the displayed month, by local date
	month  datetime.Date
	marks  map[datetime.Date][]*timeline.Mark
	err    error
	width  int
	height int

	keys keyMap
	help help.Model
}

// New creates a calendar model
func New(opts Options) Model {
	return Model{
		cursor: opts.Today,
		today:  opts.Today,
		tz:     opts.Timezone,
		store:  opts.Store,
		month:  firstOfMonth(opts.Today),
		marks:  make(map[datetime.Date][]*timeline.Mark),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Cursor returns the selected date
func (m Model) Cursor() datetime.Date { return m.cursor }

// Init loads the marks of the first month
func (m Model) Init() tea.Cmd {
	return m.loadMarks(m.month)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case marksLoadedMsg:
		// a reply for a month we already left is stale
		if msg.month != m.month {
			return m, nil
		}
		m.err = msg.err
		m.marks = make(map[datetime.Date][]*timeline.Mark)
		for _, mark := range msg.marks {
			day := mark.At.In(m.tz).Date()
			m.marks[day] = append(m.marks[day], mark)
		}
	}

	return m, nil
}

// handleKeyPress moves the cursor and reloads marks when the month changes
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.PrevDay):
		return m.moveTo(m.cursor.Prev())
	case key.Matches(msg, m.keys.NextDay):
		return m.moveTo(m.cursor.Next())
	case key.Matches(msg, m.keys.PrevWeek):
		return m.moveTo(m.cursor.SubDays(7))
	case key.Matches(msg, m.keys.NextWeek):
		return m.moveTo(m.cursor.AddDays(7))
	case key.Matches(msg, m.keys.PrevMonth):
		return m.moveTo(m.cursor.AddMonths(-1))
	case key.Matches(msg, m.keys.NextMonth):
		return m.moveTo(m.cursor.AddMonths(1))
	case key.Matches(msg, m.keys.Today):
		return m.moveTo(m.today)
	}
	return m, nil
}

func (m Model) moveTo(d datetime.Date) (tea.Model, tea.Cmd) {
	m.cursor = d
	month := firstOfMonth(d)
	if month == m.month {
		return m, nil
	}
	m.month = month
	m.marks = make(map[datetime.Date][]*timeline.Mark)
	m.err = nil
	return m, m.loadMarks(month)
}

// loadMarks queries the store for every mark within month on the model's
// clock
func (m Model) loadMarks(month datetime.Date) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, tz := m.store, m.tz
	return func() tea.Msg {
		start := datetime.Combine(month, datetime.Midnight(tz))
		end := start.AddMonths(1).Sub(datetime.Nanoseconds(1))
		r, err := datetime.NewDatetimeRange(start, end)
		if err != nil {
			return marksLoadedMsg{month: month, err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		marks, err := store.List(ctx, timeline.Filter{Range: &r})
		return marksLoadedMsg{month: month, marks: marks, err: err}
	}
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gregor calendar"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render("today " + m.today.String()))
	b.WriteString("\n")

	marked := make(map[datetime.Date]bool, len(m.marks))
	for day := range m.marks {
		marked[day] = true
	}
	b.WriteString(gridStyle.Render(RenderMonth(m.cursor, m.today, marked)))
	b.WriteString("\n")

	b.WriteString(selectedStyle.Render(fmt.Sprintf("%s %s", m.cursor.Weekday(), m.cursor)))
	b.WriteString("\n")
	b.WriteString(m.renderMarks())

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderMarks() string {
	if m.err != nil {
		return errorStyle.Render("marks unavailable: "+m.err.Error()) + "\n"
	}
	marks := m.marks[m.cursor]
	if len(marks) == 0 {
		return mutedStyle.Render("no marks") + "\n"
	}

	var b strings.Builder
	for _, mark := range marks {
		at := mark.At.In(m.tz).Time()
		b.WriteString(markStyle.Render(fmt.Sprintf("  %02d:%02d  %s", at.Hour(), at.Minute(), mark.Label)))
		b.WriteString("\n")
	}
	return b.String()
}

// firstOfMonth steps back by day count so years before 1 stay reachable.
func firstOfMonth(d datetime.Date) datetime.Date {
	return d.AddDays(int64(1 - d.Day()))
}

// Run shows the calendar until the user quits
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
