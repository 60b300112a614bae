package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diogo/cricketai/internal/api"
	"github.com/diogo/cricketai/internal/config"
	apierrors "github.com/diogo/cricketai/internal/errors"
	"github.com/diogo/cricketai/internal/logging"
	"github.com/diogo/cricketai/internal/models"
	"github.com/diogo/cricketai/internal/render"
	"github.com/diogo/cricketai/internal/widget"
)

var (
	colorText     = lipgloss.Color("#c0caf5")
	colorTextDim  = lipgloss.Color("#565f89")
	colorTextMute = lipgloss.Color("#3b4261")
	colorSuccess  = lipgloss.Color("#9ece6a")
	colorPrimary  = lipgloss.Color("#7aa2f7")
	colorError    = lipgloss.Color("#f7768e")
)

// Styles matching the chat TUI
var (
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)
)

// Replaced in tests
var (
	copyToClipboard = clipboard.WriteAll
	stdoutIsTTY     = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

// errRecorder remembers the last transport failure. The controller turns
// failures into chat messages; one-shot commands still need an exit status.
type errRecorder struct {
	api.ClientInterface

	mu  sync.Mutex
	err error
}

func (r *errRecorder) Chat(ctx context.Context, message string) (*api.ChatReply, error) {
	reply, err := r.ClientInterface.Chat(ctx, message)
	r.set(err)
	return reply, err
}

func (r *errRecorder) QuickAction(ctx context.Context, id models.QuickActionID) (*api.QuickActionReply, error) {
	reply, err := r.ClientInterface.QuickAction(ctx, id)
	r.set(err)
	return reply, err
}

func (r *errRecorder) set(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *errRecorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// oneShot is the controller and output plumbing shared by the
// non-interactive commands.
type oneShot struct {
	cfg        config.Config
	logger     zerolog.Logger
	client     *errRecorder
	controller *widget.Controller
	out        io.Writer
	errOut     io.Writer
	decorated  bool
}

func newOneShot(cmd *cobra.Command, deps *Dependencies, opts ...widget.Option) (*oneShot, error) {
	cfg, err := loadSettings(deps)
	if err != nil {
		return nil, err
	}

	client, err := deps.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s := &oneShot{
		cfg:    cfg,
		logger: commandLogger(cfg, cmd.ErrOrStderr()),
		client: &errRecorder{ClientInterface: client},
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
	s.decorated = s.out == io.Writer(os.Stdout) && stdoutIsTTY()

	opts = append([]widget.Option{
		widget.WithLogger(s.logger),
		widget.WithRefreshInterval(cfg.Refresh()),
	}, opts...)
	s.controller = widget.New(s.client, opts...)

	if cfg.Verbose {
		fmt.Fprintf(s.errOut, "[verbose] Backend: %s\n", client.BaseURL())
	}
	return s, nil
}

func (s *oneShot) Close() {
	s.client.Close()
}

// exchange runs one controller operation behind a spinner and prints the
// last AI message it produced.
func (s *oneShot) exchange(ctx context.Context, waiting, failure string, run func(context.Context) bool) error {
	p := startProgress(s.decorated, waiting)

	start := time.Now()
	if !run(ctx) {
		p.fail()
		return fmt.Errorf("nothing was sent")
	}
	took := time.Since(start)

	reply, _ := s.controller.Log().Last(models.SenderAI)

	if err := s.client.Err(); err != nil {
		p.fail()
		fmt.Fprintln(s.errOut, formatErrorMessage(err, reply.Text))
		return fmt.Errorf("%s: %w", failure, err)
	}
	p.success("Done")

	if s.cfg.Verbose {
		fmt.Fprintf(s.errOut, "[verbose] Request took %s\n", took.Round(time.Millisecond))
	}
	return s.emit(reply.Text)
}

// emit writes a reply to the output file, or to stdout as plain text or a
// rendered bubble.
func (s *oneShot) emit(text string) error {
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if s.decorated {
			successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
				fmt.Sprintf("✓ Response saved to %s", outputFlag),
			)
			fmt.Fprintln(s.errOut, successMsg)
		}
		return nil
	}

	if !s.decorated {
		fmt.Fprintln(s.out, text)
		return nil
	}

	fmt.Fprintln(s.errOut)

	if s.cfg.CopyToClipboard {
		if err := copyToClipboard(text); err != nil {
			warnMsg := lipgloss.NewStyle().Foreground(colorError).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(s.errOut, warnMsg)
		} else {
			clipMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
			fmt.Fprintln(s.errOut, clipMsg)
		}
	}

	fmt.Fprintln(s.out, renderBubble(text, getTerminalWidth(), s.cfg.Markdown))
	return nil
}

// renderBubble draws an AI reply the way the chat TUI does.
func renderBubble(text string, termWidth int, markdown bool) string {
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	body := render.FormatMessage(text, render.TerminalMarkup)
	if markdown {
		if out, err := render.Reply(text, contentWidth); err == nil {
			body = out
		}
	}

	label := assistantLabelStyle.Render("🏏 Cricket AI")
	return label + "\n" + assistantBubbleStyle.Width(bubbleWidth).Render(body)
}

// runQuery sends a single chat message and prints the reply.
func runQuery(cmd *cobra.Command, deps *Dependencies, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	s, err := newOneShot(cmd, deps)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.exchange(commandContext(cmd), "Asking the cricket expert", "chat failed",
		func(ctx context.Context) bool {
			return s.controller.SendMessage(ctx, prompt)
		})
}

// commandLogger logs to stderr: everything with --verbose, errors otherwise.
func commandLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	if !cfg.Verbose {
		return logging.Quiet(w)
	}
	logger, _, err := logging.New(logging.Options{Verbose: true, Console: true, Writer: w})
	if err != nil {
		return logging.Quiet(w)
	}
	return logger
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// truncate shortens s to maxLen runes, adding an ellipsis.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	if context != "" {
		sb.WriteString(errorStyle.Render(context))
		sb.WriteString("\n")
	}
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", err)))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	switch {
	case apierrors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Is the backend running? 'cricketai mock-server' starts a local stub"))
	case apierrors.IsParseError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check that --base-url points at the cricket API"))
	}

	return sb.String()
}
