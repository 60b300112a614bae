package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Markup decides how the three inline constructs of a chat message look.
type Markup struct {
	Strong func(string) string
	Break  string
	Bullet string
	// Escape is applied to plain text before substitution, if set.
	Escape func(string) string
}

var strongPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

var strongStyle = lipgloss.NewStyle().Bold(true)

// TerminalMarkup renders bold through lipgloss and keeps newlines.
var TerminalMarkup = Markup{
	Strong: func(s string) string { return strongStyle.Render(s) },
	Break:  "\n",
	Bullet: "• ",
}

// HTMLMarkup produces the markup the browser widget used.
var HTMLMarkup = Markup{
	Strong: func(s string) string { return "<strong>" + s + "</strong>" },
	Break:  "<br>",
	Bullet: "&bull; ",
	Escape: html.EscapeString,
}

// FormatMessage applies bold markers, line breaks and bullet glyphs.
// Bold spans do not cross lines.
func FormatMessage(message string, m Markup) string {
	if m.Escape != nil {
		message = m.Escape(message)
	}

	message = strongPattern.ReplaceAllStringFunc(message, func(match string) string {
		inner := strongPattern.FindStringSubmatch(match)[1]
		if m.Strong == nil {
			return inner
		}
		return m.Strong(inner)
	})

	if m.Break != "\n" {
		message = strings.ReplaceAll(message, "\n", m.Break)
	}
	return strings.ReplaceAll(message, "• ", m.Bullet)
}
