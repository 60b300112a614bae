package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/cricketai/internal/models"
)

// NewQuickCmd creates the quick-action command
func NewQuickCmd(deps *Dependencies) *cobra.Command {
	actions := models.DefaultQuickActions()
	ids := make([]string, len(actions))
	for i, a := range actions {
		ids[i] = string(a.ID)
	}

	return &cobra.Command{
		Use:       "quick <action>",
		Short:     "Run a quick action",
		Long:      "Run one predefined backend query and print the formatted result.\n\nActions: " + strings.Join(ids, ", "),
		Example:   "  cricketai quick best-team\n  cricketai quick captain-options -o captains.txt",
		Args:      cobra.ExactArgs(1),
		ValidArgs: ids,
		RunE: func(cmd *cobra.Command, args []string) error {
			action, ok := models.QuickActionByID(args[0])
			if !ok {
				return fmt.Errorf("unknown action %q, available: %s", args[0], strings.Join(ids, ", "))
			}
			return runQuick(cmd, deps, action)
		},
	}
}

func runQuick(cmd *cobra.Command, deps *Dependencies, action models.QuickAction) error {
	s, err := newOneShot(cmd, deps)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.exchange(commandContext(cmd), "Getting "+strings.ToLower(action.Label), "quick action failed",
		func(ctx context.Context) bool {
			s.controller.HandleQuickAction(ctx, action.ID, action.Label)
			return true
		})
}
