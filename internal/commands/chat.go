package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/cricketai/internal/config"
	"github.com/diogo/cricketai/internal/logging"
	"github.com/diogo/cricketai/internal/render"
	"github.com/diogo/cricketai/internal/tui"
	"github.com/diogo/cricketai/internal/widget"
)

var (
	chatTranscriptFlag string
	chatMarkdownFlag   bool
	chatThemeFlag      string
	chatRefreshFlag    time.Duration
)

// NewChatCmd creates the interactive widget command
func NewChatCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start the interactive chat widget",
		Long: `Start the interactive fantasy cricket widget.

The widget shows the chat log, the quick-action bar (F1-F5 or alt+1..5)
and a live panel with platform stats, match conditions and match cards,
refreshed in the background.

Type /help inside the chat for commands. Press Esc or Ctrl+C to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, deps)
		},
	}

	cmd.Flags().StringVar(&chatTranscriptFlag, "transcript", "", "Save the conversation to this file on exit (.md, .json or .html)")
	cmd.Flags().BoolVar(&chatMarkdownFlag, "markdown", false, "Render replies as markdown with glamour")
	cmd.Flags().StringVar(&chatThemeFlag, "theme", "", "TUI color theme ("+strings.Join(render.TUIThemeNames(), ", ")+")")
	cmd.Flags().DurationVar(&chatRefreshFlag, "refresh", 0, "Live data refresh interval (default from config, 30s)")

	return cmd
}

func runChat(cmd *cobra.Command, deps *Dependencies) error {
	cfg, err := loadSettings(deps)
	if err != nil {
		return err
	}

	theme := cfg.TUITheme
	if chatThemeFlag != "" {
		theme = chatThemeFlag
	}
	if theme != "" {
		if !render.SetTUITheme(theme) {
			return fmt.Errorf("unknown theme %q, available: %s", theme, strings.Join(render.TUIThemeNames(), ", "))
		}
		tui.UpdateTheme()
	}

	logPath, err := config.GetLogPath(cfg)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.New(logging.Options{File: logPath, Verbose: cfg.Verbose})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	client, err := deps.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	refresh := cfg.Refresh()
	if chatRefreshFlag > 0 {
		refresh = chatRefreshFlag
	}

	page := tui.NewPage()
	controller := widget.New(client,
		widget.WithDisplay(page),
		widget.WithLogger(logger),
		widget.WithRefreshInterval(refresh),
	)

	logger.Info().Str("backend", client.BaseURL()).Dur("refresh", refresh).Msg("starting chat")

	return deps.TUI.RunChat(commandContext(cmd), controller, page, tui.Options{
		Markdown:   cfg.Markdown || chatMarkdownFlag,
		Transcript: chatTranscriptFlag,
	})
}
