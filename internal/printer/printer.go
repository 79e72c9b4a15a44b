// Package printer renders items for the scriptable subcommands.
package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/hy4ri/tasklist-tui/internal/api"
)

// Printer writes items either as an aligned table or as JSON.
type Printer struct {
	out  io.Writer
	JSON bool
}

// New returns a Printer writing to out. A nil out means color.Output.
func New(out io.Writer) *Printer {
	if out == nil {
		out = color.Output
	}
	return &Printer{out: out}
}

// Items prints the list in server order.
func (p *Printer) Items(items []api.Item) error {
	if p.JSON {
		if items == nil {
			items = []api.Item{}
		}
		return p.encode(items)
	}

	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, err := f.Fprintln(p.out, "no todos")
		return err
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("   "), bold.Sprint("TITLE"), bold.Sprint("CREATED"))
	for _, it := range items {
		box, title := "[ ]", it.Title
		if it.Completed {
			box, title = "[x]", done.Sprint(it.Title)
		}
		tbl.AddRow(y.Sprint(it.ID), box, title, created(it.CreatedAt))
	}
	tbl.RightAlign(0)

	_, err := fmt.Fprintln(p.out, tbl)
	return err
}

// Created reports a create result. item is nil when the service only
// acknowledged the request.
func (p *Printer) Created(title string, item *api.Item) error {
	if p.JSON {
		if item != nil {
			return p.encode(item)
		}
		return p.encode(map[string]string{"message": "todo added", "title": title})
	}
	if item != nil {
		return p.Success("Added #%d %s", item.ID, item.Title)
	}
	return p.Success("Added %s", title)
}

// Success prints a one-line confirmation.
func (p *Printer) Success(format string, a ...interface{}) error {
	if p.JSON {
		return p.encode(map[string]string{"message": fmt.Sprintf(format, a...)})
	}
	g := color.New(color.FgGreen)
	_, err := g.Fprintf(p.out, format+"\n", a...)
	return err
}

func (p *Printer) encode(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func created(ts api.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Display()
}
