package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hy4ri/tasklist-tui/internal/api"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
)

func newTestRenderer(items ...api.Item) *Renderer {
	s := state.New(nil, nil, nil)
	s.Items = items
	s.Width = 80
	s.Height = 24
	return NewRenderer(s)
}

func TestViewBeforeWindowSize(t *testing.T) {
	r := newTestRenderer()
	r.Width = 0
	if got := r.View(); got != "Loading..." {
		t.Errorf("View() = %q, want %q", got, "Loading...")
	}
}

func TestViewRendersItems(t *testing.T) {
	created := api.Timestamp{Time: time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)}
	r := newTestRenderer(
		api.Item{ID: 1, Title: "Buy milk", CreatedAt: created},
		api.Item{ID: 2, Title: "Walk dog", Completed: true},
	)

	output := r.View()

	for _, want := range []string{"Buy milk", "Walk dog", "[ ]", "[x]", "2024-05-01 10:00", "> "} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}

func TestViewEmptyList(t *testing.T) {
	r := newTestRenderer()
	if output := r.View(); !strings.Contains(output, "No todos") {
		t.Error("empty list should show a hint")
	}
}

func TestViewLoadError(t *testing.T) {
	r := newTestRenderer(api.Item{ID: 1, Title: "Buy milk"})
	r.LoadErr = errors.New("connection refused")

	output := r.View()
	if !strings.Contains(output, "connection refused") {
		t.Error("output should show the load error")
	}
	if !strings.Contains(output, "to retry") {
		t.Error("output should show the retry hint")
	}
	if !strings.Contains(output, "Buy milk") {
		t.Error("previous list should still be shown")
	}
}

func TestViewEditMode(t *testing.T) {
	r := newTestRenderer(api.Item{ID: 1, Title: "Buy milk"})
	r.Edit = state.NewEditTarget(1, "Buy oat milk")

	output := r.View()
	if !strings.Contains(output, "Buy oat milk") {
		t.Error("edit buffer should replace the title")
	}
	if !strings.Contains(output, "save") {
		t.Error("status bar should show edit hints")
	}
}

func TestViewNotice(t *testing.T) {
	r := newTestRenderer(api.Item{ID: 1, Title: "Buy milk"})
	r.Notice = &state.Notice{Title: "Could not delete todo", Message: "HTTP 500"}

	output := r.View()
	if !strings.Contains(output, "Could not delete todo") || !strings.Contains(output, "HTTP 500") {
		t.Error("notice should be rendered")
	}
	if !strings.Contains(output, "dismiss") {
		t.Error("notice should say how to dismiss it")
	}
}

func TestViewHelp(t *testing.T) {
	r := newTestRenderer()
	r.ShowHelp = true

	output := r.View()
	if !strings.Contains(output, "Keyboard Shortcuts") {
		t.Error("help overlay should be rendered")
	}
	if !strings.Contains(output, "Delete todo") {
		t.Error("help should list delete")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"zero", "hello", 0, ""},
		{"wide", "日本語テキスト", 7, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
