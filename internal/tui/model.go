package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/cricketai/internal/config"
	"github.com/diogo/cricketai/internal/models"
	"github.com/diogo/cricketai/internal/render"
	"github.com/diogo/cricketai/internal/transcript"
	"github.com/diogo/cricketai/internal/widget"
)

// livePanelWidth is the width of the right-hand live panel; narrower
// terminals drop the panel from the layout.
const (
	livePanelWidth    = 34
	livePanelMinWidth = 90
	fadeStep          = 100 * time.Millisecond
)

// Message types for the TUI
type (
	animationTickMsg time.Time
	// pageChangedMsg follows every controller write to the page
	pageChangedMsg struct{}
	fadeMsg        time.Time
	noteMsg        struct {
		text string
		err  bool
	}
)

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.WriteAll

// Options configures the chat TUI
type Options struct {
	// Markdown renders AI replies with glamour instead of the inline markup
	Markdown bool
	// Transcript is written when the program exits, if set
	Transcript string
}

// Model represents the TUI state
type Model struct {
	ctx        context.Context
	controller *widget.Controller
	helpers    *widget.Helpers
	page       *Page
	opts       Options

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	snap           pageSnapshot
	busy           bool
	inputGen       int
	ready          bool
	animationFrame int
	fading         bool
	note           string
	noteErr        bool

	// rendered caches message bodies by ID for the current width
	rendered      map[string]string
	renderedWidth int

	width  int
	height int
}

// NewChatModel creates the chat TUI over a controller that renders into page.
func NewChatModel(ctx context.Context, controller *widget.Controller, page *Page, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about live IPL matches, players or strategy..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		ctx:        ctx,
		controller: controller,
		helpers:    widget.NewHelpers(controller),
		page:       page,
		opts:       opts,
		textarea:   ta,
		spinner:    s,
		snap:       page.snapshot(),
		rendered:   make(map[string]string),
	}
}

// Init boots the controller and starts listening for page changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.bootstrap(),
		waitForChange(m.page),
	)
}

func (m Model) bootstrap() tea.Cmd {
	return func() tea.Msg {
		m.controller.Bootstrap(m.ctx)
		return nil
	}
}

// waitForChange blocks until the controller touches the page.
func waitForChange(p *Page) tea.Cmd {
	return func() tea.Msg {
		<-p.Changed()
		return pageChangedMsg{}
	}
}

func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

func fadeTick() tea.Cmd {
	return tea.Tick(fadeStep, func(t time.Time) tea.Msg {
		return fadeMsg(t)
	})
}

// trigger runs a bound control off the UI loop
func (m Model) trigger(control, arg string) tea.Cmd {
	return func() tea.Msg {
		if !m.controller.Trigger(m.ctx, control, arg) {
			return noteMsg{text: "nothing is bound to " + control, err: true}
		}
		return nil
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+y":
			cmds = append(cmds, m.copyLastReply())

		case "ctrl+r":
			cmds = append(cmds, m.refresh())

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if strings.HasPrefix(input, "/") {
				m.textarea.Reset()
				return m, m.runSlash(input)
			}
			return m, m.trigger(widget.ControlSubmit, m.textarea.Value())

		default:
			if id, ok := m.actionForKey(msg.String()); ok {
				return m, m.trigger(widget.ControlName(id), "")
			}
		}

	case pageChangedMsg:
		cmds = append(cmds, m.sync(), waitForChange(m.page))

	case fadeMsg:
		m.fading = false
		cmds = append(cmds, m.sync())

	case noteMsg:
		m.note = msg.text
		m.noteErr = msg.err

	case spinner.TickMsg:
		if m.busy {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.busy {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Only pass KeyMsg to textarea to prevent escape sequence leaks
	if !m.busy {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// sync pulls the latest page state into the model
func (m *Model) sync() tea.Cmd {
	var cmds []tea.Cmd
	prev := len(m.snap.messages)
	m.snap = m.page.snapshot()

	if m.snap.inputGen != m.inputGen {
		m.inputGen = m.snap.inputGen
		m.textarea.Reset()
	}

	if m.snap.busy && !m.busy {
		m.animationFrame = 0
		cmds = append(cmds, m.spinner.Tick, animationTick())
	}
	m.busy = m.snap.busy

	m.updateViewport()
	if len(m.snap.messages) != prev {
		m.viewport.GotoBottom()
	}

	if m.snap.animating() && !m.fading {
		m.fading = true
		cmds = append(cmds, fadeTick())
	}
	return tea.Batch(cmds...)
}

func (m *Model) layout() {
	contentWidth := m.chatWidth()

	headerHeight := 3
	actionsHeight := 3
	inputHeight := 5
	statusHeight := 1

	vpHeight := m.height - headerHeight - actionsHeight - inputHeight - statusHeight - 2
	if vpHeight < 5 {
		vpHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth-4, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth - 4
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(m.width - 8)
}

func (m Model) showLivePanel() bool {
	return m.width >= livePanelMinWidth
}

func (m Model) chatWidth() int {
	if m.showLivePanel() {
		return m.width - livePanelWidth
	}
	return m.width
}

// actionForKey maps F1..F5 and alt+1..alt+5 to quick actions in bar order
func (m Model) actionForKey(key string) (models.QuickActionID, bool) {
	var idx int
	switch {
	case len(key) == 2 && key[0] == 'f' && key[1] >= '1' && key[1] <= '9':
		idx = int(key[1] - '1')
	case len(key) == 5 && strings.HasPrefix(key, "alt+") && key[4] >= '1' && key[4] <= '9':
		idx = int(key[4] - '1')
	default:
		return "", false
	}
	if idx >= len(m.snap.actions) {
		return "", false
	}
	return m.snap.actions[idx].ID, true
}

func (m Model) copyLastReply() tea.Cmd {
	return func() tea.Msg {
		last, ok := m.controller.Log().Last(models.SenderAI)
		if !ok {
			return noteMsg{text: "nothing to copy yet"}
		}
		if err := copyToClipboard(last.Text); err != nil {
			return noteMsg{text: "copy failed: " + err.Error(), err: true}
		}
		return noteMsg{text: "last reply copied to clipboard"}
	}
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		err := m.controller.LoadLiveData(m.ctx)
		switch {
		case errors.Is(err, widget.ErrTickInFlight):
			return noteMsg{text: "refresh already running"}
		case err != nil:
			return noteMsg{text: "live data unavailable", err: true}
		}
		return noteMsg{text: "live data refreshed"}
	}
}

// runSlash handles the local commands typed into the input
func (m Model) runSlash(input string) tea.Cmd {
	fields := strings.Fields(input)
	name, args := fields[0], fields[1:]

	switch name {
	case "/quit", "/exit":
		return tea.Quit

	case "/save":
		if len(args) != 1 {
			return note("usage: /save <path.md|path.json|path.html>", true)
		}
		path := args[0]
		return func() tea.Msg {
			if err := transcript.Save(path, m.controller.Log().Messages()); err != nil {
				return noteMsg{text: "save failed: " + err.Error(), err: true}
			}
			return noteMsg{text: "transcript saved to " + path}
		}

	case "/ask":
		if len(args) != 1 {
			return note("usage: /ask <"+strings.Join(widget.PresetNames(), "|")+">", true)
		}
		preset := args[0]
		return func() tea.Msg {
			if _, err := m.helpers.AskPreset(m.ctx, preset); err != nil {
				return noteMsg{text: err.Error(), err: true}
			}
			return nil
		}

	case "/demo":
		m.helpers.Demo(m.ctx, widget.DefaultDemo)
		return note("demo questions scheduled", false)

	case "/refresh":
		return m.refresh()

	case "/find":
		if len(args) == 0 {
			return note("usage: /find <text>", true)
		}
		hits := transcript.Search(m.controller.Log().Messages(), strings.Join(args, " "))
		return note(fmt.Sprintf("%d matching messages", len(hits)), false)

	case "/help":
		return note("/ask <preset>  /demo  /find <text>  /refresh  /save <path>  /quit", false)
	}

	return note("unknown command "+name, true)
}

func note(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return noteMsg{text: text, err: isErr}
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string

	sections = append(sections, m.renderHeader(m.width-2))

	chatWidth := m.chatWidth()
	messages := messagesAreaStyle.
		Width(chatWidth - 2).
		Height(m.viewport.Height).
		Render(m.viewport.View())

	if m.showLivePanel() {
		live := m.renderLivePanel(livePanelWidth-2, m.viewport.Height)
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, messages, live))
	} else {
		sections = append(sections, messages)
	}

	sections = append(sections, m.renderActions())

	var inputContent string
	if m.busy {
		inputContent = m.renderLoadingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(m.width-2).Render(inputContent))

	sections = append(sections, m.renderStatusBar(m.width-2))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(width int) string {
	parts := []string{
		titleStyle.Render("🏏 Cricket AI"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(config.BackendHost(m.controller.Client().BaseURL())),
	}
	if m.busy {
		parts = append(parts, hintStyle.Render("  •  "), loadingStyle.Render("thinking"))
	}
	return headerStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}

// renderActions draws the quick-action bar
func (m Model) renderActions() string {
	var buttons []string
	for i, a := range m.snap.actions {
		style := actionStyle
		if m.snap.pressed(a.ID) {
			style = actionActiveStyle
		}
		key := actionKeyStyle.Render(fmt.Sprintf("F%d ", i+1))
		buttons = append(buttons, style.Render(key+a.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

var liveRows = []struct {
	section string
	field   models.Field
	label   string
}{
	{"📊 Live Stats", models.FieldActiveUsers, "Active users"},
	{"", models.FieldTeamsCreated, "Teams created"},
	{"", models.FieldSuccessRate, "Success rate"},
	{"", models.FieldLiveContests, "Live contests"},
	{"🌤 Weather", models.FieldTemperature, "Temperature"},
	{"", models.FieldWindSpeed, "Wind"},
	{"", models.FieldHumidity, "Humidity"},
	{"🏟 Pitch", models.FieldBattingFriendly, "Batting"},
	{"", models.FieldPaceSupport, "Pace"},
	{"", models.FieldSpinSupport, "Spin"},
}

// renderLivePanel draws stats, conditions and match cards
func (m Model) renderLivePanel(width, height int) string {
	var b strings.Builder

	if !m.snap.hidden[models.RegionLivePanel] {
		for i, row := range liveRows {
			if row.section != "" {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(liveSectionStyle.Render(row.section))
				b.WriteString("\n")
			}

			value := liveLoadingStyle.Render("loading…")
			if v, ok := m.snap.fields[row.field]; ok {
				style := liveValueStyle
				if m.snap.highlighted(row.field) {
					style = liveUpdatedStyle
				}
				value = style.Render(v.value)
			}
			b.WriteString(liveLabelStyle.Render(fmt.Sprintf("%-14s", row.label)))
			b.WriteString(value)
			b.WriteString("\n")
		}
	}

	if !m.snap.hidden[models.RegionMatchesList] {
		b.WriteString("\n")
		b.WriteString(liveSectionStyle.Render("📺 Matches"))
		b.WriteString("\n")
		if len(m.snap.matches) == 0 {
			b.WriteString(liveLoadingStyle.Render("loading…"))
		}
		for _, match := range m.snap.matches {
			b.WriteString(renderMatchCard(match, width-2))
			b.WriteString("\n")
		}
	}

	return livePanelStyle.Width(width).Height(height).Render(b.String())
}

func renderMatchCard(match models.Match, width int) string {
	lines := []string{
		matchNameStyle.Render(match.Name),
		matchVenueStyle.Render(match.Venue),
		matchStatusStyle(match.Status).Render(match.Status),
	}
	if score, ok := match.Score.Get(); ok {
		lines = append(lines, matchScoreStyle.Render(score))
	}
	return matchCardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderLoadingAnimation renders a colorful animated loading indicator
func (m Model) renderLoadingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	frame := m.animationFrame

	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[frame%len(chars)])

	// a ball travelling down the pitch
	pitchWidth := 22
	pos := frame % pitchWidth
	var pitch strings.Builder
	for i := 0; i < pitchWidth; i++ {
		if i == pos {
			pitch.WriteString(lipgloss.NewStyle().Foreground(colorLive).Render("●"))
			continue
		}
		colorIdx := (i + frame) % len(gradientColors)
		pitch.WriteString(lipgloss.NewStyle().Foreground(gradientColors[colorIdx]).Render("─"))
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Cricket AI is thinking ")
	return fmt.Sprintf("%s %s%s %s", spin, pitch.String(), lipgloss.NewStyle().Foreground(colorText).Render("|"), text)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"F1-F5", "Quick actions"},
		{"Ctrl+Y", "Copy"},
		{"Ctrl+R", "Refresh"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}
	bar := strings.Join(items, "  │  ")

	if m.note != "" {
		style := statusNoteStyle
		if m.noteErr {
			style = errorStyle
		}
		bar = style.Render(m.note) + "   " + bar
	}
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}
	bubbleWidth := m.viewport.Width - 6
	if bubbleWidth != m.renderedWidth {
		m.rendered = make(map[string]string)
		m.renderedWidth = bubbleWidth
	}

	var content strings.Builder
	for i, pm := range m.snap.messages {
		if i > 0 {
			content.WriteString("\n")
		}
		msg := pm.msg
		body := m.renderBody(msg, bubbleWidth-4)

		if msg.IsUser() {
			content.WriteString(userLabelStyle.Render("⬤ You") + "\n")
			content.WriteString(userBubbleStyle.Width(bubbleWidth).Render(body))
		} else {
			content.WriteString(assistantLabelStyle.Render("🏏 Cricket AI") + "\n")
			style := assistantBubbleStyle
			if m.snap.fresh(i) {
				style = freshBubbleStyle
			}
			content.WriteString(style.Width(bubbleWidth).Render(body))
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

func (m *Model) renderBody(msg models.ChatMessage, width int) string {
	if body, ok := m.rendered[msg.ID]; ok {
		return body
	}

	body := msg.Text
	if !msg.IsUser() {
		body = render.FormatMessage(msg.Text, render.TerminalMarkup)
		if m.opts.Markdown {
			if out, err := render.Reply(msg.Text, width); err == nil {
				body = out
			}
		}
	}
	m.rendered[msg.ID] = body
	return body
}

// RunChat starts the chat TUI and blocks until the user quits
func RunChat(ctx context.Context, controller *widget.Controller, page *Page, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewChatModel(ctx, controller, page, opts)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	cancel()
	controller.Stop()

	if opts.Transcript != "" {
		if saveErr := transcript.Save(opts.Transcript, controller.Log().Messages()); saveErr != nil && err == nil {
			err = fmt.Errorf("failed to save transcript: %w", saveErr)
		}
	}
	return err
}
