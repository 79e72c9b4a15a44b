package logic

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
)

// notify raises a blocking notice and, when enabled, a desktop notification.
func (h *Handler) notify(title string, err error) tea.Cmd {
	h.Notice = &state.Notice{Title: title, Message: err.Error()}

	if !h.Config.UI.DesktopNotifications || h.desktopNotify == nil {
		return nil
	}

	send := h.desktopNotify
	logger := h.Logger
	message := err.Error()
	return func() tea.Msg {
		if err := send(title, message); err != nil {
			logger.Warn("failed to send notification", "err", err)
		}
		return nil
	}
}

// handleCopy copies the selected item's title to the clipboard.
func (h *Handler) handleCopy() tea.Cmd {
	item, ok := h.SelectedItem()
	if !ok || h.copyText == nil {
		return nil
	}

	write := h.copyText
	title := item.Title
	return func() tea.Msg {
		if err := write(title); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %q", title)}
	}
}

func beeepNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

func clipboardWrite(text string) error {
	return clipboard.WriteAll(text)
}
