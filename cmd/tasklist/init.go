package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hy4ri/tasklist-tui/internal/config"
)

func addInit(topLevel *cobra.Command, o *rootOptions) {
	force := false

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a template config file.",
		Example: `
tasklist init
tasklist init --force --config ./tasklist.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := o.configPath
			if path == "" {
				var err error
				if path, err = config.ConfigPath(); err != nil {
					return fmt.Errorf("failed to get config path: %w", err)
				}
			} else if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}

			if err := os.WriteFile(path, []byte(config.Template), 0600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file created: %s\n\n", path)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  1. Set api.base_url to the address of your todo service")
			fmt.Fprintln(out, "  2. Run 'tasklist' to start")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file.")
	topLevel.AddCommand(cmd)
}
