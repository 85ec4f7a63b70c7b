// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-marstime/internal/mars"
	"github.com/litescript/ls-marstime/internal/state"
	"github.com/litescript/ls-marstime/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewYear
	ViewMissions
)

const viewCount = 3

// Msg types for Bubble Tea
type (
	// TickMsg triggers a recompute of the Mars clock.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// DataUpdateMsg carries a snapshot produced outside the tick loop, such
	// as after a catalog reload.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a failure outside the tick loop.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager
	clock mars.Clock

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	animTick  int

	// Sub-models
	dashboard DashboardModel
	year      YearModel
	missions  MissionsModel

	snapshot state.Snapshot
}

// New creates a new root UI model. A nil clock reads the wall clock.
func New(stateMgr *state.Manager, clock mars.Clock) Model {
	if clock == nil {
		clock = mars.SystemClock{}
	}
	return Model{
		state:     stateMgr,
		clock:     clock,
		viewMode:  ViewDashboard,
		dashboard: NewDashboardModel(),
		year:      NewYearModel(),
		missions:  NewMissionsModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return TickMsg(m.clock.Now()) },
		animTickCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "d":
			m.viewMode = ViewDashboard
		case "2", "y":
			m.viewMode = ViewYear
		case "3", "m":
			m.viewMode = ViewMissions

		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount
		case "shift+tab":
			m.viewMode = (m.viewMode + viewCount - 1) % viewCount

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo, tagline and tabs take ~7 lines, footer ~2.
		contentHeight := msg.Height - 10
		m.dashboard = m.dashboard.SetSize(msg.Width, contentHeight)
		m.year = m.year.SetSize(msg.Width, contentHeight)
		m.missions = m.missions.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd(m.state.RefreshInterval()))
		// Errors are kept in the snapshot and shown in the footer.
		_ = m.state.Update(m.clock.Now())
		m = m.applySnapshot(m.state.Snapshot())

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case DataUpdateMsg:
		m = m.applySnapshot(msg.Snapshot)

	case ErrorMsg:
		m.statusMsg = "Error: " + msg.Error.Error()
	}

	return m, tea.Batch(cmds...)
}

func (m Model) applySnapshot(snap state.Snapshot) Model {
	m.snapshot = snap
	m.dashboard = m.dashboard.UpdateData(snap)
	m.year = m.year.UpdateData(snap)
	m.missions = m.missions.UpdateData(snap)
	return m
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewYear:
		m.year, cmd = m.year.Update(msg)
	case ViewMissions:
		m.missions, cmd = m.missions.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewDashboard:
		content = m.dashboard.View()
	case ViewYear:
		content = m.year.View()
	case ViewMissions:
		content = m.missions.View()
	}

	return m.renderFrame(content)
}

// ActiveView returns the view currently shown.
func (m Model) ActiveView() ViewMode {
	return m.viewMode
}

func (m Model) renderFrame(content string) string {
	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`  ╦  ╔═╗   ╔╦╗╔═╗╦═╗╔═╗╔╦╗╦╔╦╗╔═╗`,
		`  ║  ╚═╗───║║║╠═╣╠╦╝╚═╗ ║ ║║║║║╣ `,
		`  ╩═╝╚═╝   ╩ ╩╩ ╩╩╚═╚═╝ ╩ ╩╩ ╩╚═╝`,
	}

	var b strings.Builder
	b.WriteString("\n")
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  Mars Calendar · Ls %s model · v%s", m.snapshot.Model, version.Version)))
	b.WriteString("\n\n")
	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient:
// dust -> rust -> ochre, darker toward the bottom row.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Dust (#F2C6A0) -> Rust (#C1440E) -> Ochre (#E8A33D)
	var r, g, b float64
	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 242 + t*(193-242)
		g = 198 + t*(68-198)
		b = 160 + t*(14-160)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 193 + t*(232-193)
		g = 68 + t*(163-68)
		b = 14 + t*(61-14)
	}

	brightness := 1.0 - (yRatio * 0.4)
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r*brightness), clampByte(g*brightness), clampByte(b*brightness))
}

func clampByte(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return int(v)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Clock", "[2] Year", "[3] Missions"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#C1440E")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E8A33D"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.snapshot.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	case !m.snapshot.LastUpdate.IsZero():
		status = accentStyle.Render(spinner) + dimStyle.Render(" "+m.snapshot.LastUpdate.UTC().Format("2006-01-02 15:04:05 UTC"))
		if m.snapshot.ComputeDuration > 0 {
			status += dimStyle.Render(" (" + m.snapshot.ComputeDuration.Round(time.Microsecond).String() + ")")
		}
	default:
		status = accentStyle.Render(spinner) + dimStyle.Render(" Computing...")
	}

	var help string
	switch m.viewMode {
	case ViewYear:
		help = dimStyle.Render("←/→: year | .: current year | tab: switch view")
	case ViewMissions:
		help = dimStyle.Render("↑↓: navigate | tab: switch view")
	default:
		help = dimStyle.Render("tab: switch view | q: quit")
	}

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help
	if m.statusMsg != "" {
		footer += "\n  " + errorStyle.Render(m.statusMsg)
	}
	return footer
}

func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// SendDataUpdate creates a command that sends a data update message.
func SendDataUpdate(snapshot state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{Snapshot: snapshot}
	}
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
