// Package transcript exports the chat log to Markdown, JSON or HTML.
package transcript

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diogo/cricketai/internal/models"
	"github.com/diogo/cricketai/internal/render"
)

// Format represents the format for exporting a transcript
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
)

// Options configures how a transcript is exported
type Options struct {
	Format Format
	Title  string
	// ExportedAt stamps the header; zero means now
	ExportedAt time.Time
}

// DefaultOptions returns sensible defaults for export
func DefaultOptions() Options {
	return Options{
		Format: FormatMarkdown,
		Title:  "Cricket AI chat",
	}
}

// FormatFromPath picks the format from a file extension. Unknown extensions
// fall back to Markdown.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatMarkdown
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown transcript format %q (want markdown, json or html)", name)
}

// Export renders messages in order.
func Export(messages []models.ChatMessage, opts Options) ([]byte, error) {
	if opts.ExportedAt.IsZero() {
		opts.ExportedAt = time.Now()
	}
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}

	switch opts.Format {
	case FormatMarkdown, "":
		return []byte(toMarkdown(messages, opts)), nil
	case FormatJSON:
		return toJSON(messages, opts)
	case FormatHTML:
		return []byte(toHTML(messages, opts)), nil
	}
	return nil, fmt.Errorf("unknown transcript format %q", opts.Format)
}

// Save writes messages to path in the format its extension implies.
func Save(path string, messages []models.ChatMessage) error {
	opts := DefaultOptions()
	opts.Format = FormatFromPath(path)

	data, err := Export(messages, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create transcript directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

func speaker(s models.Sender) string {
	if s == models.SenderUser {
		return "You"
	}
	return "Cricket AI"
}

func toMarkdown(messages []models.ChatMessage, opts Options) string {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(opts.Title)
	sb.WriteString("\n\n")
	sb.WriteString("**Exported:** ")
	sb.WriteString(opts.ExportedAt.Format("2006-01-02 15:04:05"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "**Messages:** %d\n\n---\n\n", len(messages))

	for i, msg := range messages {
		sb.WriteString("## ")
		sb.WriteString(speaker(msg.Sender))
		if !msg.Time.IsZero() {
			sb.WriteString(" (")
			sb.WriteString(msg.Time.Format("15:04:05"))
			sb.WriteString(")")
		}
		sb.WriteString("\n\n")
		sb.WriteString(msg.Text)
		sb.WriteString("\n")

		if i < len(messages)-1 {
			sb.WriteString("\n---\n\n")
		}
	}
	return sb.String()
}

type exportTranscript struct {
	Title      string               `json:"title"`
	ExportedAt time.Time            `json:"exported_at"`
	Messages   []models.ChatMessage `json:"messages"`
}

func toJSON(messages []models.ChatMessage, opts Options) ([]byte, error) {
	export := exportTranscript{
		Title:      opts.Title,
		ExportedAt: opts.ExportedAt,
		Messages:   messages,
	}
	if export.Messages == nil {
		export.Messages = []models.ChatMessage{}
	}
	return json.MarshalIndent(export, "", "  ")
}

// toHTML lays messages out the way the browser widget did: one div per
// message, classed by sender.
func toHTML(messages []models.ChatMessage, opts Options) string {
	var sb strings.Builder
	title := html.EscapeString(opts.Title)

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	sb.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&sb, "<h1>%s</h1>\n", title)
	fmt.Fprintf(&sb, "<p class=\"exported\">%s</p>\n", opts.ExportedAt.Format("2006-01-02 15:04:05"))
	sb.WriteString("<div class=\"chat-messages\">\n")
	for _, msg := range messages {
		fmt.Fprintf(&sb, "<div class=\"message %s\" id=\"msg-%s\">%s</div>\n",
			msg.Sender, html.EscapeString(msg.ID), render.FormatMessage(msg.Text, render.HTMLMarkup))
	}
	sb.WriteString("</div>\n</body>\n</html>\n")
	return sb.String()
}

// Search returns the indexes of messages containing query, case-insensitively.
func Search(messages []models.ChatMessage, query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var hits []int
	for i, msg := range messages {
		if strings.Contains(strings.ToLower(msg.Text), q) {
			hits = append(hits, i)
		}
	}
	return hits
}
