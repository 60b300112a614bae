// Package commands provides CLI commands for cricketai.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diogo/cricketai/internal/config"
)

var (
	// Global flags
	baseURLFlag string
	verboseFlag bool
	outputFlag  string
	fileFlag    string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = NewRootCmd(NewDependencies())

// NewRootCmd builds the command tree over deps.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cricketai [prompt]",
		Short: "IPL fantasy cricket assistant for the terminal",
		Long: `cricketai is a terminal client for the fantasy-cricket chat backend.
It chats with the AI expert, runs quick actions such as best team or
captain options, and follows live platform stats and match conditions.

Examples:
  cricketai chat                         Start the interactive widget
  cricketai "Who should be my captain?"  Send a single question
  cricketai -f question.md               Read the question from a file
  echo "Best team?" | cricketai          Read the question from stdin
  cricketai quick best-team              Run a quick action
  cricketai live --watch                 Follow live stats
  cricketai mock-server                  Serve canned data on :5000`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "cricketai %s (built %s)\n", Version, BuildTime)
				return nil
			}

			prompt, ok, err := readPrompt(cmd, args)
			if err != nil {
				return err
			}
			if !ok {
				return cmd.Help()
			}
			return runQuery(cmd, deps, prompt)
		},
	}

	cmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Backend API root (default from config, http://localhost:5000/api)")
	cmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Log requests and timings to stderr")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(NewChatCmd(deps))
	cmd.AddCommand(NewAskCmd(deps))
	cmd.AddCommand(NewQuickCmd(deps))
	cmd.AddCommand(NewLiveCmd(deps))
	cmd.AddCommand(NewHealthCmd(deps))
	cmd.AddCommand(NewConfigCmd(deps))
	cmd.AddCommand(NewMockServerCmd(deps))

	return cmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// readPrompt takes the prompt from --file, the argument or piped stdin,
// in that order. ok is false when none was given.
func readPrompt(cmd *cobra.Command, args []string) (string, bool, error) {
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", false, fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), true, nil
	}

	if len(args) > 0 {
		return args[0], true, nil
	}

	in := cmd.InOrStdin()
	if in == io.Reader(os.Stdin) && !stdinIsPiped() {
		return "", false, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", false, fmt.Errorf("failed to read stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", false, nil
	}
	return string(data), true, nil
}

func stdinIsPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadSettings returns the config with command-line overrides applied.
func loadSettings(deps *Dependencies) (config.Config, error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if baseURLFlag != "" {
		cfg.BaseURL = config.NormalizeBaseURL(baseURLFlag)
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	return cfg, nil
}
