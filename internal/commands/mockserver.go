package commands

import (
	"github.com/spf13/cobra"

	"github.com/diogo/cricketai/internal/logging"
	"github.com/diogo/cricketai/internal/mockserver"
)

var mockAddrFlag string

// NewMockServerCmd creates the mock-server command
func NewMockServerCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Serve canned backend data for local development",
		Long: `Serve the backend REST API from canned data, so the widget can be
tried without the real backend. Live stats and match conditions are
randomized on every request.`,
		Example: "  cricketai mock-server --addr :5000\n  cricketai chat --base-url http://localhost:5000/api",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(deps)
			if err != nil {
				return err
			}

			logger, closeLog, err := logging.New(logging.Options{
				Verbose: cfg.Verbose,
				Console: true,
				Writer:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			srv := mockserver.New(mockserver.WithLogger(logger))
			return srv.ListenAndServe(commandContext(cmd), mockAddrFlag)
		},
	}

	cmd.Flags().StringVar(&mockAddrFlag, "addr", ":5000", "Listen address")
	return cmd
}
