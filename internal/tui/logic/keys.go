package logic

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// A notice blocks the view until it is dismissed. Requests keep running.
	if h.Notice != nil {
		switch msg.String() {
		case "enter", "esc", " ", "q":
			h.Notice = nil
		}
		return nil
	}

	if h.ShowHelp {
		switch msg.String() {
		case "?", "esc", "q":
			h.ShowHelp = false
		}
		return nil
	}

	if h.Edit != nil {
		return h.handleEditKey(msg)
	}

	if h.ShowInput {
		return h.handleInputKey(msg)
	}

	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok {
		return nil
	}
	return h.handleAction(action)
}

func (h *Handler) handleAction(action string) tea.Cmd {
	switch action {
	case "up":
		if h.Cursor > 0 {
			h.Cursor--
		}
	case "down":
		if h.Cursor < len(h.Items)-1 {
			h.Cursor++
		}
	case "top":
		h.Cursor = 0
	case "bottom":
		h.Cursor = max(0, len(h.Items)-1)
	case "quit":
		return tea.Quit
	case "help":
		h.ShowHelp = true
	case "refresh":
		h.StatusMsg = ""
		return h.Load()
	case "add":
		return h.toggleInput()
	case "edit":
		if item, ok := h.SelectedItem(); ok {
			return h.BeginEdit(item.ID)
		}
	case "toggle":
		if item, ok := h.SelectedItem(); ok {
			return h.ToggleComplete(item.ID)
		}
	case "delete":
		if item, ok := h.SelectedItem(); ok {
			return h.Delete(item.ID)
		}
	case "copy":
		return h.handleCopy()
	case "back":
		h.StatusMsg = ""
	}
	return nil
}

// toggleInput shows or hides the creation input, like an "Add"/"Cancel" button.
func (h *Handler) toggleInput() tea.Cmd {
	h.ShowInput = !h.ShowInput
	if !h.ShowInput {
		h.NewTitle.Blur()
		return nil
	}
	h.NewTitle.Focus()
	return textinput.Blink
}

func (h *Handler) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return h.Create(h.NewTitle.Value())
	case "esc":
		return h.toggleInput()
	}

	var cmd tea.Cmd
	h.NewTitle, cmd = h.NewTitle.Update(msg)
	return cmd
}

func (h *Handler) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return h.SaveEdit(h.Edit.ID)
	case "esc":
		h.CancelEdit()
		return nil
	}

	var cmd tea.Cmd
	h.Edit.Input, cmd = h.Edit.Input.Update(msg)
	return cmd
}
