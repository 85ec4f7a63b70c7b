package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-marstime/internal/mars"
	"github.com/litescript/ls-marstime/internal/report"
	"github.com/litescript/ls-marstime/internal/state"
)

// YearModel lists the orbit landmarks of one Mars year. It follows the
// current year until the user browses to another one.
type YearModel struct {
	width    int
	height   int
	snapshot state.Snapshot

	offset int // years relative to the current one
	events *mars.YearEvents
	err    error
}

// NewYearModel creates a new year model.
func NewYearModel() YearModel {
	return YearModel{}
}

// SetSize updates the viewport size.
func (m YearModel) SetSize(width, height int) YearModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m YearModel) UpdateData(snapshot state.Snapshot) YearModel {
	prev := m.displayedYear()
	m.snapshot = snapshot
	if m.events == nil || m.displayedYear() != prev {
		m = m.load()
	}
	return m
}

// Update handles messages.
func (m YearModel) Update(msg tea.Msg) (YearModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h", "[":
			if m.displayedYear() > mars.MinYear {
				m.offset--
				m = m.load()
			}
		case "right", "l", "]":
			if m.displayedYear() < mars.MaxYear {
				m.offset++
				m = m.load()
			}
		case ".", "home":
			m.offset = 0
			m = m.load()
		}
	}
	return m, nil
}

// displayedYear returns the Mars year on screen.
func (m YearModel) displayedYear() int {
	current := 0
	if m.snapshot.Reading != nil {
		current = m.snapshot.Reading.Mars.Year()
	}
	return current + m.offset
}

func (m YearModel) load() YearModel {
	year := m.displayedYear()
	if m.snapshot.Year != nil && m.snapshot.Year.Year == year {
		y := *m.snapshot.Year
		m.events, m.err = &y, nil
		return m
	}
	ev, err := mars.EventsOf(year)
	if err != nil {
		m.events, m.err = nil, err
		return m
	}
	m.events, m.err = &ev, nil
	return m
}

// View renders the year table.
func (m YearModel) View() string {
	var b strings.Builder

	if m.snapshot.Reading == nil {
		b.WriteString("Waiting for the first reading...\n")
		return b.String()
	}

	year := m.displayedYear()
	title := fmt.Sprintf("Mars Year %d", year)
	if m.offset == 0 {
		title += " (current)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("  " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if m.events == nil {
		return b.String()
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("  starts %s · %.3f sols",
		m.events.Start.UTC().Format("2006-01-02 15:04:05 UTC"), m.events.Sols)))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-26s %-20s %9s %9s", "Event", "UTC", "Sol", "Ls")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	now := m.snapshot.Reading.Mars
	marked := false
	for _, row := range report.YearEventRows(*m.events) {
		line := fmt.Sprintf("%-26s %-20s %9.2f %8.2f°",
			row.Name, row.UTC.Format("2006-01-02 15:04"), row.Sol, row.SolarLongitude)
		// Highlight the next landmark of the current year.
		if m.offset == 0 && !marked && row.Sol > now.Sol() {
			b.WriteString(selectedRowStyle.Render(line))
			marked = true
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
