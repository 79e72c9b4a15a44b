package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hy4ri/tasklist-tui/internal/api"
	"github.com/hy4ri/tasklist-tui/internal/config"
	"github.com/hy4ri/tasklist-tui/internal/logging"
	"github.com/hy4ri/tasklist-tui/internal/tui"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	baseURL    string
}

// env is what a command needs to talk to the service.
type env struct {
	cfg    *config.Config
	client *api.Client
	logger *slog.Logger
	closer io.Closer
}

func (e *env) Close() error {
	return e.closer.Close()
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tasklist",
		Short: "Terminal client for a remote todo list",
		Long: `tasklist shows the todo list of a remote service and lets you add, complete,
rename and delete items. Run without arguments to start the interactive UI.

Config file: ~/.config/tasklist/config.yaml (create one with 'tasklist init').`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(o)
		},
	}

	cmd.PersistentFlags().StringVar(&o.configPath, "config", "",
		"Config file (default ~/.config/tasklist/config.yaml).")
	cmd.PersistentFlags().StringVar(&o.baseURL, "base-url", "",
		"Address of the todo service, overrides api.base_url.")

	addList(cmd, o)
	addAdd(cmd, o)
	addToggle(cmd, o)
	addEdit(cmd, o)
	addRemove(cmd, o)
	addInit(cmd, o)
	addVersion(cmd)

	return cmd
}

// loadConfig reads the config file and applies the --base-url override
// before validating, so the flag can replace a bad file or env value.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		var err error
		if path, err = config.ConfigPath(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg, err := config.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.baseURL != "" {
		cfg.API.BaseURL = o.baseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) setup() (*env, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &env{
		cfg:    cfg,
		client: api.NewClient(cfg.API.BaseURL),
		logger: logger,
		closer: closer,
	}, nil
}

// runTUI starts the interactive application.
func runTUI(o *rootOptions) error {
	e, err := o.setup()
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("starting", "base_url", e.client.BaseURL(), "version", version)

	app := tui.NewApp(e.client, e.cfg, e.logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
