package commands

import (
	"context"

	"github.com/diogo/cricketai/internal/api"
	"github.com/diogo/cricketai/internal/config"
	"github.com/diogo/cricketai/internal/tui"
	"github.com/diogo/cricketai/internal/widget"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(ctx context.Context, controller *widget.Controller, page *tui.Page, opts tui.Options) error
	RunConfig() error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// NewClient builds the backend client from the effective config.
	NewClient func(cfg config.Config) (api.ClientInterface, error)

	// LoadConfig reads the user configuration.
	LoadConfig func() (config.Config, error)

	// SaveConfig persists the user configuration.
	SaveConfig func(cfg config.Config) error

	// TUI is the terminal user interface.
	TUI TUIInterface
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(ctx context.Context, controller *widget.Controller, page *tui.Page, opts tui.Options) error {
	return tui.RunChat(ctx, controller, page, opts)
}

func (d *DefaultTUI) RunConfig() error {
	return tui.RunConfig()
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		NewClient:  newAPIClient,
		LoadConfig: config.LoadConfig,
		SaveConfig: config.SaveConfig,
		TUI:        &DefaultTUI{},
	}
}

func newAPIClient(cfg config.Config) (api.ClientInterface, error) {
	client, err := api.NewClient(
		api.WithBaseURL(cfg.BaseURL),
		api.WithTimeout(cfg.Timeout()),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
