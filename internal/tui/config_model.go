package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/cricketai/internal/config"
	"github.com/diogo/cricketai/internal/render"
)

// configView represents the current view in the config menu
type configView int

const (
	viewMain configView = iota
	viewTUIThemeSelect
)

// Menu item indices for main view
const (
	menuRefresh = iota
	menuVerbose
	menuCopyToClipboard
	menuMarkdown
	menuTUITheme
	menuExit
	menuItemCount
)

// refreshChoices are the live data periods the menu cycles through, in seconds
var refreshChoices = []int{10, 15, 30, 60, 120}

// feedbackClearMsg is sent to clear feedback messages
type feedbackClearMsg struct{}

// ConfigModel represents the config TUI state
type ConfigModel struct {
	config     config.Config
	configPath string
	logPath    string
	save       func(config.Config) error

	// Navigation
	view           configView
	cursor         int
	tuiThemeCursor int

	// Feedback
	feedback        string
	feedbackErr     bool
	feedbackTimeout time.Duration

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewConfigModel creates the settings menu over cfg; every change is
// persisted through save.
func NewConfigModel(cfg config.Config, save func(config.Config) error) ConfigModel {
	configPath, _ := config.GetConfigPath()
	logPath, _ := config.GetLogPath(cfg)

	tuiThemeCursor := 0
	currentTUITheme := cfg.TUITheme
	if currentTUITheme == "" {
		currentTUITheme = render.TokyoNightTheme.Name
	}
	for i, t := range render.TUIThemeNames() {
		if t == currentTUITheme {
			tuiThemeCursor = i
			break
		}
	}

	render.SetTUITheme(currentTUITheme)
	UpdateTheme()

	return ConfigModel{
		config:          cfg,
		configPath:      configPath,
		logPath:         logPath,
		save:            save,
		view:            viewMain,
		tuiThemeCursor:  tuiThemeCursor,
		feedbackTimeout: 2 * time.Second,
	}
}

// Init initializes the model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// clearFeedback returns a command that clears the feedback message after a delay
func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

// Update handles messages and updates the model
func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case feedbackClearMsg:
		m.feedback = ""
		m.feedbackErr = false

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.view == viewTUIThemeSelect {
				m.view = viewMain
			} else {
				return m, tea.Quit
			}

		case "up", "k":
			m.move(-1)

		case "down", "j":
			m.move(1)

		case "enter", " ":
			return m.handleSelect()
		}
	}

	return m, nil
}

func (m *ConfigModel) move(delta int) {
	if m.view == viewMain {
		m.cursor = wrap(m.cursor+delta, menuItemCount)
		return
	}
	m.tuiThemeCursor = wrap(m.tuiThemeCursor+delta, len(render.TUIThemeNames()))
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// handleSelect handles menu item selection
func (m ConfigModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.view == viewTUIThemeSelect {
		selected := render.TUIThemeNames()[m.tuiThemeCursor]
		m.config.TUITheme = selected

		// Apply the new TUI theme immediately
		render.SetTUITheme(selected)
		UpdateTheme()

		m.view = viewMain
		return m.persist(fmt.Sprintf("TUI theme set to %s", selected))
	}

	switch m.cursor {
	case menuRefresh:
		m.config.RefreshInterval = nextRefresh(m.config.RefreshInterval)
		return m.persist(fmt.Sprintf("Live data refreshes every %ds", m.config.RefreshInterval))

	case menuVerbose:
		m.config.Verbose = !m.config.Verbose
		return m.persist("Verbose logging " + enabledWord(m.config.Verbose))

	case menuCopyToClipboard:
		m.config.CopyToClipboard = !m.config.CopyToClipboard
		return m.persist("Copy to clipboard " + enabledWord(m.config.CopyToClipboard))

	case menuMarkdown:
		m.config.Markdown = !m.config.Markdown
		return m.persist("Markdown replies " + enabledWord(m.config.Markdown))

	case menuTUITheme:
		m.view = viewTUIThemeSelect
		return m, nil

	case menuExit:
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfigModel) persist(success string) (tea.Model, tea.Cmd) {
	if err := m.save(m.config); err != nil {
		m.feedback = fmt.Sprintf("Error: %v", err)
		m.feedbackErr = true
	} else {
		m.feedback = success
		m.feedbackErr = false
	}
	return m, clearFeedback(m.feedbackTimeout)
}

// nextRefresh returns the choice after current, wrapping around.
func nextRefresh(current int) int {
	for _, c := range refreshChoices {
		if c > current {
			return c
		}
	}
	return refreshChoices[0]
}

func enabledWord(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

// Config returns the settings as currently edited.
func (m ConfigModel) Config() config.Config {
	return m.config
}

// View renders the TUI
func (m ConfigModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	panel := messagesAreaStyle.Width(contentWidth)

	sections := []string{
		headerStyle.Width(contentWidth).Render(titleStyle.Render("🏏 Cricket AI settings")),
		panel.Render(lipgloss.JoinVertical(lipgloss.Left,
			liveSectionStyle.UnsetMarginTop().Render("📁 Paths"),
			"   Config:  "+hintStyle.Render(m.configPath),
			"   Log:     "+hintStyle.Render(m.logPath),
			"   Backend: "+liveValueStyle.Render(m.config.BaseURL),
		)),
	}

	if m.view == viewTUIThemeSelect {
		sections = append(sections, panel.Render(m.renderTUIThemeSelect()))
	} else {
		sections = append(sections, panel.Render(m.renderMainMenu()))
	}

	if m.feedback != "" {
		if m.feedbackErr {
			sections = append(sections, errorStyle.Render("✗ "+m.feedback))
		} else {
			sections = append(sections, statusNoteStyle.Render("✓ "+m.feedback))
		}
	}

	sections = append(sections, m.renderStatusBar(contentWidth))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ConfigModel) menuLine(index int, label, value string) string {
	cursor := "  "
	style := liveLabelStyle
	if m.cursor == index {
		cursor = actionActiveStyle.UnsetBorderStyle().UnsetPadding().Render("▸ ")
		style = liveValueStyle
	}
	if value == "" {
		return cursor + style.Render(label)
	}
	return cursor + style.Width(22).Render(label) + value
}

// renderMainMenu renders the main settings menu
func (m ConfigModel) renderMainMenu() string {
	theme := m.config.TUITheme
	if theme == "" {
		theme = render.TokyoNightTheme.Name
	}

	items := []string{
		liveSectionStyle.UnsetMarginTop().Render("⚙ Settings"),
		"",
		m.menuLine(menuRefresh, "Refresh Interval", liveValueStyle.Render(fmt.Sprintf("%ds", m.config.RefreshInterval))),
		m.menuLine(menuVerbose, "Verbose Logging", m.renderBoolValue(m.config.Verbose)),
		m.menuLine(menuCopyToClipboard, "Copy to Clipboard", m.renderBoolValue(m.config.CopyToClipboard)),
		m.menuLine(menuMarkdown, "Markdown Replies", m.renderBoolValue(m.config.Markdown)),
		m.menuLine(menuTUITheme, "TUI Theme", liveValueStyle.Render(theme)),
		"",
		m.menuLine(menuExit, "Exit", ""),
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderTUIThemeSelect renders the TUI color theme selection sub-menu
func (m ConfigModel) renderTUIThemeSelect() string {
	items := []string{liveSectionStyle.UnsetMarginTop().Render("🎨 Select TUI Theme"), ""}

	for i, theme := range render.AvailableTUIThemes() {
		cursor := "  "
		style := liveLabelStyle
		if m.tuiThemeCursor == i {
			cursor = "▸ "
			style = liveValueStyle
		}

		current := ""
		if theme.Name == m.config.TUITheme {
			current = statusNoteStyle.Render(" (current)")
		}
		items = append(items, cursor+style.Render(fmt.Sprintf("%s - %s", theme.Name, theme.Description))+current)
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderBoolValue renders a boolean value with appropriate styling
func (m ConfigModel) renderBoolValue(value bool) string {
	if value {
		return liveUpdatedStyle.Render("enabled")
	}
	return hintStyle.Render("disabled")
}

// renderStatusBar renders the bottom status bar
func (m ConfigModel) renderStatusBar(width int) string {
	back := "Exit"
	if m.view != viewMain {
		back = "Back"
	}
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"↑↓", "Navigate"},
		{"Enter", "Select"},
		{"Esc", back},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// RunConfig starts the settings menu over the saved config
func RunConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	p := tea.NewProgram(
		NewConfigModel(cfg, config.SaveConfig),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
