package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-marstime/internal/catalog"
	"github.com/litescript/ls-marstime/internal/state"
)

// MissionsModel is the mission catalog table.
type MissionsModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot
}

// NewMissionsModel creates a new missions model.
func NewMissionsModel() MissionsModel {
	return MissionsModel{}
}

// SetSize updates the viewport size.
func (m MissionsModel) SetSize(width, height int) MissionsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m MissionsModel) UpdateData(snapshot state.Snapshot) MissionsModel {
	m.snapshot = snapshot
	if n := len(snapshot.Missions); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	return m
}

// Update handles messages.
func (m MissionsModel) Update(msg tea.Msg) (MissionsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		count := len(m.snapshot.Missions)
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < count-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if count > 0 {
				m.cursor = count - 1
			}
		}
	}
	return m, nil
}

// Selected returns the mission under the cursor, if any.
func (m MissionsModel) Selected() *catalog.ResolvedMission {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Missions) {
		return nil
	}
	rm := m.snapshot.Missions[m.cursor]
	return &rm
}

// View renders the mission table.
func (m MissionsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Missions"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-14s %-16s %-17s %-17s %8s  %-16s",
		"Mission", "Event", "UTC", "Mars", "Ls", "Season")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	missions := m.snapshot.Missions
	if len(missions) == 0 {
		b.WriteString("  No missions in catalog\n")
		return b.String()
	}

	maxRows := m.height - 8
	if maxRows < 5 {
		maxRows = 5
	}
	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := min(startIdx+maxRows, len(missions))

	for i := startIdx; i < endIdx; i++ {
		rm := missions[i]
		row := fmt.Sprintf("%-14s %-16s %-17s %-17s %7.2f°  %-16s",
			truncate(rm.Name, 14),
			truncate(rm.Event, 16),
			rm.Time.UTC().Format("2006-01-02 15:04"),
			rm.Mars,
			rm.SolarLongitude,
			rm.Season,
		)
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if len(missions) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d missions\n", startIdx+1, endIdx, len(missions)))
	}

	b.WriteString(m.renderDetail())
	return b.String()
}

func (m MissionsModel) renderDetail() string {
	sel := m.Selected()
	if sel == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	if sel.Notes != "" {
		b.WriteString(labelStyle.Render("  " + sel.Notes))
		b.WriteString("\n")
	}
	if r := m.snapshot.Reading; r != nil {
		ago := r.Mars.Sub(sel.Mars)
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %s %s was %.1f sols ago (%.2f Mars years)",
			sel.Name, sel.Event, ago.Sols(), ago.Years())))
		b.WriteString("\n")
	}
	for _, s := range m.snapshot.Spans {
		if s.Name != sel.Name {
			continue
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %s: %s -> %s, %.1f sols",
			s.Name, s.From.Event, s.To.Event, s.Sols)))
		b.WriteString("\n")
	}
	return b.String()
}
