// Package tui provides the terminal user interface for cricketai.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/cricketai/internal/errors"
	"github.com/diogo/cricketai/internal/render"
)

// Color variables (updated from theme)
var (
	colorBorder lipgloss.Color

	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorHighlight lipgloss.Color
	colorLive      lipgloss.Color
	colorError     lipgloss.Color

	colorText     lipgloss.Color
	colorTextDim  lipgloss.Color
	colorTextMute lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	// Messages area panel
	messagesAreaStyle lipgloss.Style

	userBubbleStyle      lipgloss.Style
	userLabelStyle       lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	assistantLabelStyle  lipgloss.Style
	// freshBubbleStyle marks a message that just arrived
	freshBubbleStyle lipgloss.Style

	// Quick-action bar
	actionStyle       lipgloss.Style
	actionActiveStyle lipgloss.Style
	actionKeyStyle    lipgloss.Style

	// Live panel
	livePanelStyle     lipgloss.Style
	liveSectionStyle   lipgloss.Style
	liveLabelStyle     lipgloss.Style
	liveValueStyle     lipgloss.Style
	liveUpdatedStyle   lipgloss.Style
	liveLoadingStyle   lipgloss.Style
	matchCardStyle     lipgloss.Style
	matchNameStyle     lipgloss.Style
	matchVenueStyle    lipgloss.Style
	matchScoreStyle    lipgloss.Style
	matchLiveStyle     lipgloss.Style
	matchUpcomingStyle lipgloss.Style
	matchDoneStyle     lipgloss.Style

	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style
	loadingStyle    lipgloss.Style

	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style
	statusNoteStyle lipgloss.Style

	errorStyle lipgloss.Style
)

// Gradient colors for the thinking animation (fixed colors)
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#ff6b6b"),
	lipgloss.Color("#feca57"),
	lipgloss.Color("#48dbfb"),
	lipgloss.Color("#ff9ff3"),
	lipgloss.Color("#54a0ff"),
	lipgloss.Color("#5f27cd"),
	lipgloss.Color("#00d2d3"),
	lipgloss.Color("#1dd1a1"),
}

func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorBorder = theme.Border
	colorPrimary = theme.Primary
	colorSecondary = theme.Secondary
	colorAccent = theme.Accent
	colorHighlight = theme.Highlight
	colorLive = theme.Live
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute

	rebuildStyles()
}

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorSecondary).
		Padding(0, 1).
		MarginLeft(4)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		MarginLeft(4)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1).
		MarginRight(4)

	assistantLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	freshBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorTextMute).
		Foreground(colorTextDim).
		Padding(0, 1).
		MarginRight(4)

	actionStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	actionActiveStyle = actionStyle.
		BorderForeground(colorHighlight).
		Foreground(colorHighlight).
		Bold(true)

	actionKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	livePanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	liveSectionStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true).
		MarginTop(1)

	liveLabelStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	liveValueStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	liveUpdatedStyle = lipgloss.NewStyle().
		Foreground(colorHighlight).
		Bold(true)

	liveLoadingStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	matchCardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false).
		BorderForeground(colorAccent).
		PaddingLeft(1).
		MarginTop(1)

	matchNameStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	matchVenueStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	matchScoreStyle = lipgloss.NewStyle().
		Foreground(colorPrimary)

	matchLiveStyle = lipgloss.NewStyle().
		Foreground(colorLive).
		Bold(true)

	matchUpcomingStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	matchDoneStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginRight(1)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	statusNoteStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Italic(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)
}

// matchStatusStyle picks the badge style for a match status.
func matchStatusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "live":
		return matchLiveStyle
	case "upcoming":
		return matchUpcomingStyle
	default:
		return matchDoneStyle
	}
}

// FormatError returns a styled error message with additional context.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	if status := errors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := errors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	switch {
	case errors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Is the backend running? Try 'cricketai mock-server' for a local stub"))
	case errors.IsParseError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: The base URL may not point at the cricket API"))
	}

	return sb.String()
}

// PrintError prints a styled error message.
func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Println(FormatError(err))
}
