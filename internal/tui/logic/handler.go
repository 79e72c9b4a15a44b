package logic

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
)

// Handler owns every state transition. It runs on the bubbletea Update
// goroutine; remote calls run as commands and come back as messages.
type Handler struct {
	*state.State

	desktopNotify func(title, message string) error
	copyText      func(text string) error
}

func NewHandler(s *state.State) *Handler {
	return &Handler{
		State:         s,
		desktopNotify: beeepNotify,
		copyText:      clipboardWrite,
	}
}

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.Load(),
	)
}

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		h.NewTitle.Width = max(10, msg.Width-12)
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil

	case itemsLoadedMsg:
		return h.handleItemsLoaded(msg)

	case itemCreatedMsg:
		return h.handleItemCreated(msg)

	case toggleResultMsg:
		return h.handleToggleResult(msg)

	case editSavedMsg:
		return h.handleEditSaved(msg)

	case itemDeletedMsg:
		return h.handleItemDeleted(msg)
	}

	// Forward non-key messages (like blink) to active inputs
	if h.Edit != nil {
		var cmd tea.Cmd
		h.Edit.Input, cmd = h.Edit.Input.Update(msg)
		return cmd
	}
	if h.ShowInput {
		var cmd tea.Cmd
		h.NewTitle, cmd = h.NewTitle.Update(msg)
		return cmd
	}
	return nil
}
