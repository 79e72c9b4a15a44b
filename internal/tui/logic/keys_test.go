package logic

import (
	"errors"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/tasklist-tui/internal/api/apitest"
)

func keyPress(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(h *Handler, keys ...string) {
	for _, k := range keys {
		run(h, h.Update(keyPress(k)))
	}
}

func TestCursorMovement(t *testing.T) {
	h, _ := loaded(t,
		apitest.Item{ID: 1, Title: "A"},
		apitest.Item{ID: 2, Title: "B"},
		apitest.Item{ID: 3, Title: "C"},
	)

	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"down", []string{"j"}, 1},
		{"down past end", []string{"j", "j", "j", "j"}, 2},
		{"up at top", []string{"k"}, 0},
		{"bottom", []string{"G"}, 2},
		{"gg", []string{"G", "g", "g"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.Cursor = 0
			h.KeyState.Reset()
			press(h, tt.keys...)
			assert.Equal(t, tt.want, h.Cursor)
		})
	}
}

func TestToggleKey(t *testing.T) {
	h, srv := loaded(t, apitest.Item{ID: 1, Title: "A"}, apitest.Item{ID: 2, Title: "B"})

	press(h, "j", "x")
	assert.False(t, h.Items[0].Completed)
	assert.True(t, h.Items[1].Completed)
	assert.True(t, srv.Items()[1].Completed)

	press(h, " ")
	assert.False(t, h.Items[1].Completed)
}

func TestDeleteSequence(t *testing.T) {
	h, srv := loaded(t, apitest.Item{ID: 1, Title: "A"}, apitest.Item{ID: 2, Title: "B"})

	press(h, "d", "j")
	assert.Len(t, h.Items, 2, "a single d does nothing")
	assert.Equal(t, 1, h.Cursor)

	press(h, "d", "d")
	require.Len(t, h.Items, 1)
	assert.Equal(t, int64(1), h.Items[0].ID)
	assert.Equal(t, 0, h.Cursor, "cursor clamps after removal")
	assert.Equal(t, 1, srv.Count(http.MethodDelete, "/todos/2"))
	assert.Equal(t, "Todo deleted", h.StatusMsg)
}

func TestEditKeys(t *testing.T) {
	h, srv := loaded(t, apitest.Item{ID: 1, Title: "A"})

	press(h, "e")
	require.NotNil(t, h.Edit)
	assert.Equal(t, "A", h.Edit.Buffer())

	press(h, "!", "esc")
	assert.Nil(t, h.Edit)
	assert.Equal(t, "A", h.Items[0].Title)

	press(h, "enter", "!", "enter")
	assert.Nil(t, h.Edit)
	assert.Equal(t, "A!", h.Items[0].Title)
	assert.Equal(t, "A!", srv.Items()[0].Title)
}

func TestInputKeys(t *testing.T) {
	h, srv := loaded(t)

	press(h, "a")
	require.True(t, h.ShowInput)
	assert.True(t, h.NewTitle.Focused())

	press(h, "esc")
	assert.False(t, h.ShowInput)

	press(h, "a", "Buy milk", "enter")
	assert.False(t, h.ShowInput)
	require.Len(t, h.Items, 1)
	assert.Equal(t, "Buy milk", srv.Items()[0].Title)
}

func TestNoticeBlocksKeys(t *testing.T) {
	h, srv := loaded(t, apitest.Item{ID: 1, Title: "A"})

	srv.FailNext(http.MethodDelete, http.StatusInternalServerError)
	press(h, "d", "d")
	require.NotNil(t, h.Notice)

	press(h, "x")
	assert.False(t, h.Items[0].Completed, "keys are swallowed while a notice is shown")

	press(h, "esc")
	assert.Nil(t, h.Notice)
	press(h, "x")
	assert.True(t, h.Items[0].Completed)
}

func TestHelpOverlay(t *testing.T) {
	h, _ := loaded(t, apitest.Item{ID: 1, Title: "A"})

	press(h, "?")
	assert.True(t, h.ShowHelp)
	press(h, "x")
	assert.False(t, h.Items[0].Completed)
	press(h, "?")
	assert.False(t, h.ShowHelp)
}

func TestCopyKey(t *testing.T) {
	h, _ := loaded(t, apitest.Item{ID: 1, Title: "Buy milk"})

	var copied string
	h.copyText = func(text string) error {
		copied = text
		return nil
	}

	press(h, "y", "y")
	assert.Equal(t, "Buy milk", copied)
	assert.Equal(t, `Copied "Buy milk"`, h.StatusMsg)

	h.copyText = func(string) error { return errors.New("no clipboard") }
	press(h, "y", "y")
	assert.Equal(t, "Failed to copy: no clipboard", h.StatusMsg)
}

func TestQuitKeys(t *testing.T) {
	h, _ := loaded(t)

	for _, k := range []string{"q", "ctrl+c"} {
		cmd := h.Update(keyPress(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}
