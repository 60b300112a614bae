package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diogo/cricketai/internal/widget"
)

var (
	askPresetFlag string
	askListFlag   bool
)

// NewAskCmd creates the ask command
func NewAskCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask one question, or one of the canned ones",
		Long: `Ask the cricket expert a single question and print the reply.

With --preset the question is one of the canned ones:
  ` + strings.Join(widget.PresetNames(), ", "),
		Example: `  cricketai ask "Is Bumrah fit for tonight?"
  cricketai ask --preset best-captain
  cricketai ask --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if askListFlag {
				return listPresets(cmd)
			}
			return runAsk(cmd, deps, args)
		},
	}

	cmd.Flags().StringVarP(&askPresetFlag, "preset", "p", "", "Ask a canned question by name")
	cmd.Flags().BoolVarP(&askListFlag, "list", "l", false, "List the canned questions")
	_ = cmd.RegisterFlagCompletionFunc("preset", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return widget.PresetNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runAsk(cmd *cobra.Command, deps *Dependencies, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))

	switch {
	case askPresetFlag != "" && question != "":
		return fmt.Errorf("give either a question or --preset, not both")
	case askPresetFlag == "" && question == "":
		return fmt.Errorf("nothing to ask: give a question or --preset")
	}

	if askPresetFlag != "" {
		if _, ok := widget.PresetByName(askPresetFlag); !ok {
			return fmt.Errorf("unknown preset %q, available: %s", askPresetFlag, strings.Join(widget.PresetNames(), ", "))
		}
	}

	s, err := newOneShot(cmd, deps)
	if err != nil {
		return err
	}
	defer s.Close()

	helpers := widget.NewHelpers(s.controller)
	return s.exchange(commandContext(cmd), "Asking the cricket expert", "chat failed",
		func(ctx context.Context) bool {
			if askPresetFlag == "" {
				return helpers.AskQuestion(ctx, question)
			}
			sent, _ := helpers.AskPreset(ctx, askPresetFlag)
			return sent
		})
}

func listPresets(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, p := range widget.Presets() {
		fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Question)
	}
	return w.Flush()
}
