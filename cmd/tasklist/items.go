package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hy4ri/tasklist-tui/internal/api"
	"github.com/hy4ri/tasklist-tui/internal/printer"
)

// outputOptions selects the output format of item commands.
type outputOptions struct {
	JSON bool
}

func addOutputArg(cmd *cobra.Command, oo *outputOptions) {
	cmd.Flags().BoolVar(&oo.JSON, "json", false,
		"Output as JSON.")
}

func (oo *outputOptions) printer(cmd *cobra.Command) *printer.Printer {
	p := printer.New(cmd.OutOrStdout())
	p.JSON = oo.JSON
	return p
}

// withEnv runs fn with a ready client and a context bounded by the request timeout.
func withEnv(cmd *cobra.Command, o *rootOptions, fn func(ctx context.Context, e *env) error) error {
	e, err := o.setup()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.RequestTimeout())
	defer cancel()
	return fn(ctx, e)
}

func addList(topLevel *cobra.Command, o *rootOptions) {
	oo := &outputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print all todos.",
		Example: `
tasklist list
tasklist list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, o, func(ctx context.Context, e *env) error {
				items, err := e.client.ListItems(ctx)
				if err != nil {
					return err
				}
				return oo.printer(cmd).Items(items)
			})
		},
	}

	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addAdd(topLevel *cobra.Command, o *rootOptions) {
	oo := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo.",
		Example: `
tasklist add Buy milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := titleArg(args)
			if err != nil {
				return err
			}
			return withEnv(cmd, o, func(ctx context.Context, e *env) error {
				item, err := e.client.CreateItem(ctx, title)
				if err != nil {
					return err
				}
				e.logger.Info("todo added", "title", title)
				return oo.printer(cmd).Created(title, item)
			})
		},
	}

	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addToggle(topLevel *cobra.Command, o *rootOptions) {
	oo := &outputOptions{}

	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Flip the completion flag of a todo.",
		Example: `
tasklist toggle 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, o, func(ctx context.Context, e *env) error {
				item, err := findItem(ctx, e.client, id)
				if err != nil {
					return err
				}
				completed := !item.Completed
				if err := e.client.SetCompleted(ctx, id, completed); err != nil {
					return err
				}
				e.logger.Info("todo toggled", "id", id, "completed", completed)

				state := "open"
				if completed {
					state = "done"
				}
				return oo.printer(cmd).Success("Marked #%d %s", id, state)
			})
		},
	}

	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command, o *rootOptions) {
	oo := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Rename a todo.",
		Example: `
tasklist edit 3 Buy oat milk
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			title, err := titleArg(args[1:])
			if err != nil {
				return err
			}
			return withEnv(cmd, o, func(ctx context.Context, e *env) error {
				// The update replaces both fields, so the current flag is sent along.
				item, err := findItem(ctx, e.client, id)
				if err != nil {
					return err
				}
				if err := e.client.UpdateItem(ctx, id, title, item.Completed); err != nil {
					return err
				}
				e.logger.Info("todo updated", "id", id, "title", title)
				return oo.printer(cmd).Success("Renamed #%d to %s", id, title)
			})
		},
	}

	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command, o *rootOptions) {
	oo := &outputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo.",
		Example: `
tasklist rm 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, o, func(ctx context.Context, e *env) error {
				if err := e.client.DeleteItem(ctx, id); err != nil {
					return err
				}
				e.logger.Info("todo deleted", "id", id)
				return oo.printer(cmd).Success("Deleted #%d", id)
			})
		},
	}

	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", s)
	}
	return id, nil
}

func titleArg(args []string) (string, error) {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		return "", errors.New("title must not be empty")
	}
	return title, nil
}

func findItem(ctx context.Context, client *api.Client, id int64) (api.Item, error) {
	items, err := client.ListItems(ctx)
	if err != nil {
		return api.Item{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return api.Item{}, fmt.Errorf("todo %d not found", id)
}
