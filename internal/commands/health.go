package commands

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// NewHealthCmd creates the health command
func NewHealthCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(cmd, deps)
		},
	}
}

func runHealth(cmd *cobra.Command, deps *Dependencies) error {
	s, err := newOneShot(cmd, deps)
	if err != nil {
		return err
	}
	defer s.Close()

	p := startProgress(s.decorated, "Checking backend")
	health, err := s.client.Health(commandContext(cmd))
	if err != nil {
		p.fail()
		fmt.Fprintln(s.errOut, formatErrorMessage(err, "Backend unreachable"))
		return fmt.Errorf("health check failed: %w", err)
	}
	p.success("Backend answered")

	providers := make([]string, 0, len(health.AIStatus))
	for name := range health.AIStatus {
		providers = append(providers, name)
	}
	sort.Strings(providers)

	if !s.decorated {
		fmt.Fprintf(s.out, "status: %s\n", health.Status)
		if health.Timestamp != "" {
			fmt.Fprintf(s.out, "timestamp: %s\n", health.Timestamp)
		}
		for _, name := range providers {
			fmt.Fprintf(s.out, "%s: %t\n", name, health.AIStatus[name])
		}
		return nil
	}

	on := lipgloss.NewStyle().Foreground(colorSuccess).Render("●")
	off := lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
	dim := lipgloss.NewStyle().Foreground(colorTextDim)

	fmt.Fprintf(s.out, "%s %s\n", assistantLabelStyle.Render("Backend"), health.Status)
	if health.Timestamp != "" {
		fmt.Fprintln(s.out, dim.Render("  as of "+health.Timestamp))
	}
	for _, name := range providers {
		mark := off
		if health.AIStatus[name] {
			mark = on
		}
		fmt.Fprintf(s.out, "  %s %s\n", mark, name)
	}
	return nil
}
