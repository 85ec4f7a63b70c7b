package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-marstime/internal/mars"
	"github.com/litescript/ls-marstime/internal/state"
)

// Styles shared by the views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E8A33D"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F2C6A0")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("#7A2A0A"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C1440E"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// eventLogRows is how many state events the clock view lists.
const eventLogRows = 8

// DashboardModel is the live Mars clock view.
type DashboardModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DashboardModel) UpdateData(snapshot state.Snapshot) DashboardModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages. The clock has no interactive state.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

// View renders the clock.
func (m DashboardModel) View() string {
	var b strings.Builder

	r := m.snapshot.Reading
	if r == nil {
		if m.snapshot.LastError != nil {
			b.WriteString(errorStyle.Render("Error: " + m.snapshot.LastError.Error()))
			b.WriteString("\n")
			return b.String()
		}
		b.WriteString("Waiting for the first reading...\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render("Mars Clock"))
	b.WriteString("\n")
	b.WriteString(m.renderClock(r))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Season"))
	b.WriteString("\n")
	b.WriteString(m.renderSeason(r))
	b.WriteString("\n")
	b.WriteString(m.renderEventLog())

	return b.String()
}

func (m DashboardModel) renderClock(r *state.Reading) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString("  " + labelStyle.Render(fmt.Sprintf("%-17s", label)) + valueStyle.Render(value) + "\n")
	}
	line("Mars year", fmt.Sprintf("MY%d", r.Mars.Year()))
	line("Sol", fmt.Sprintf("%.4f of %.2f", r.Mars.Sol(), r.SolsInYear))
	line("Time of sol", solClock(r.Mars.Sol()))
	line("Solar longitude", fmt.Sprintf("%.3f°", r.SolarLongitude))
	line("Earth UTC", r.At.UTC().Format("2006-01-02 15:04:05"))
	return b.String()
}

func (m DashboardModel) renderSeason(r *state.Reading) string {
	width := m.barWidth()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s %5.1f%%\n",
		labelStyle.Render(fmt.Sprintf("%-17s", r.Season)),
		renderProgressBar(seasonProgress(r.SolarLongitude, r.Season), width),
		seasonProgress(r.SolarLongitude, r.Season)*100))
	b.WriteString(fmt.Sprintf("  %s %s %5.1f%%\n",
		labelStyle.Render(fmt.Sprintf("%-17s", fmt.Sprintf("MY%d", r.Mars.Year()))),
		renderProgressBar(r.YearFraction, width),
		r.YearFraction*100))

	until := mars.SolsBetween(r.At, r.NextBoundary)
	b.WriteString(fmt.Sprintf("  %s in %.1f sols (%s)\n",
		valueStyle.Render(r.NextSeason.String()),
		until,
		r.NextBoundary.UTC().Format("2006-01-02 15:04 UTC")))
	return b.String()
}

func (m DashboardModel) renderEventLog() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Events"))
	b.WriteString("\n")

	events := m.snapshot.Events
	if len(events) == 0 {
		b.WriteString(labelStyle.Render("  No events yet"))
		b.WriteString("\n")
		return b.String()
	}
	if len(events) > eventLogRows {
		events = events[len(events)-eventLogRows:]
	}
	// Newest first.
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		b.WriteString(rowStyle.Render(fmt.Sprintf("  %s  %-16s %-18s %s",
			e.Timestamp.UTC().Format(time.TimeOnly), e.Type, e.Mars, e.Detail)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DashboardModel) barWidth() int {
	w := m.width - 30
	switch {
	case w < 10:
		return 10
	case w > 50:
		return 50
	}
	return w
}

// seasonProgress returns how far ls is through season s, in [0, 1).
func seasonProgress(ls float64, s mars.Season) float64 {
	p := math.Mod(ls-s.StartLongitude()+360, 360) / 90
	if p >= 1 {
		p = math.Nextafter(1, 0)
	}
	return p
}

// solClock renders the fractional part of a sol as a 24-hour Mars clock.
func solClock(sol float64) string {
	secs := int((sol - math.Floor(sol)) * 86400)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

func renderProgressBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return "[" + barStyle.Render(bar) + "]"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
