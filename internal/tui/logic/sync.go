package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist-tui/internal/api"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
)

// request runs fn with a context bounded by the configured request timeout.
// The returned closure is safe to run off the Update goroutine: it only
// touches what was captured here.
func (h *Handler) request(fn func(ctx context.Context, client *api.Client) tea.Msg) tea.Cmd {
	client := h.Client
	timeout := h.Config.RequestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return fn(ctx, client)
	}
}

// Load fetches the full list. The list is replaced wholesale on success.
func (h *Handler) Load() tea.Cmd {
	h.InFlight.Add(state.Op{Kind: state.OpLoad})
	h.Loading = true

	return h.request(func(ctx context.Context, client *api.Client) tea.Msg {
		items, err := client.ListItems(ctx)
		return itemsLoadedMsg{items: items, err: err}
	})
}

func (h *Handler) handleItemsLoaded(msg itemsLoadedMsg) tea.Cmd {
	h.InFlight.Done(state.Op{Kind: state.OpLoad})
	h.Loading = h.InFlight.Has(state.Op{Kind: state.OpLoad})

	if msg.err != nil {
		// Keep the last good list; the error stays visible until a retry succeeds.
		h.LoadErr = msg.err
		h.Logger.Error("load failed", "err", msg.err)
		return nil
	}

	h.LoadErr = nil
	h.ReplaceItems(msg.items)
	h.Logger.Debug("list loaded", "count", len(msg.items))
	return nil
}

// Create sends a new item with the title as typed. Blank titles and a second
// create while one is outstanding are dropped without a request.
func (h *Handler) Create(title string) tea.Cmd {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	if !h.InFlight.Begin(state.Op{Kind: state.OpCreate}) {
		return nil
	}

	return h.request(func(ctx context.Context, client *api.Client) tea.Msg {
		item, err := client.CreateItem(ctx, title)
		return itemCreatedMsg{title: title, item: item, err: err}
	})
}

func (h *Handler) handleItemCreated(msg itemCreatedMsg) tea.Cmd {
	h.InFlight.Done(state.Op{Kind: state.OpCreate})

	// The input is closed whatever the outcome.
	h.NewTitle.Reset()
	h.NewTitle.Blur()
	h.ShowInput = false

	if msg.err != nil {
		h.Logger.Error("create failed", "title", msg.title, "err", msg.err)
		return h.notify("Could not add todo", msg.err)
	}

	h.StatusMsg = "Todo added"
	if msg.item != nil {
		h.StatusMsg = fmt.Sprintf("Todo #%d added", msg.item.ID)
	}
	return h.Load()
}

// ToggleComplete flips the completion flag right away and reverts to the
// exact prior list if the server refuses. Changes made by other operations
// while the request is out are reverted with it.
func (h *Handler) ToggleComplete(id int64) tea.Cmd {
	item, ok := h.FindItem(id)
	if !ok {
		return nil
	}

	snapshot := h.Snapshot()
	completed := !item.Completed
	h.UpdateItem(id, func(it api.Item) api.Item {
		it.Completed = completed
		return it
	})
	h.InFlight.Add(state.Op{Kind: state.OpToggle, ID: id})

	return h.request(func(ctx context.Context, client *api.Client) tea.Msg {
		err := client.SetCompleted(ctx, id, completed)
		return toggleResultMsg{id: id, completed: completed, snapshot: snapshot, err: err}
	})
}

func (h *Handler) handleToggleResult(msg toggleResultMsg) tea.Cmd {
	h.InFlight.Done(state.Op{Kind: state.OpToggle, ID: msg.id})

	if msg.err != nil {
		h.Restore(msg.snapshot)
		h.Logger.Warn("toggle rolled back", "id", msg.id, "completed", msg.completed, "err", msg.err)
	}
	return nil
}

// BeginEdit puts item id in edit mode. Any other edit buffer is dropped.
func (h *Handler) BeginEdit(id int64) tea.Cmd {
	item, ok := h.FindItem(id)
	if !ok {
		return nil
	}
	h.Edit = state.NewEditTarget(id, item.Title)
	return textinput.Blink
}

// CancelEdit leaves edit mode. A save already sent still completes.
func (h *Handler) CancelEdit() {
	h.Edit = nil
}

// SaveEdit sends the edit buffer of item id, as typed, as its new title along
// with the item's current completion flag.
func (h *Handler) SaveEdit(id int64) tea.Cmd {
	if !h.Editing(id) {
		return nil
	}
	title := h.Edit.Buffer()
	if strings.TrimSpace(title) == "" {
		return nil
	}
	item, ok := h.FindItem(id)
	if !ok {
		return nil
	}
	if !h.InFlight.Begin(state.Op{Kind: state.OpSave, ID: id}) {
		return nil
	}

	completed := item.Completed
	return h.request(func(ctx context.Context, client *api.Client) tea.Msg {
		err := client.UpdateItem(ctx, id, title, completed)
		return editSavedMsg{id: id, title: title, err: err}
	})
}

func (h *Handler) handleEditSaved(msg editSavedMsg) tea.Cmd {
	h.InFlight.Done(state.Op{Kind: state.OpSave, ID: msg.id})

	if msg.err != nil {
		// Edit mode and buffer stay as they are so the user can retry.
		h.Logger.Error("save failed", "id", msg.id, "err", msg.err)
		return h.notify("Could not save todo", msg.err)
	}

	h.UpdateItem(msg.id, func(it api.Item) api.Item {
		it.Title = msg.title
		return it
	})
	if h.Editing(msg.id) {
		h.Edit = nil
	}
	h.StatusMsg = "Todo updated"
	return nil
}

// Delete removes item id on the server, then locally.
func (h *Handler) Delete(id int64) tea.Cmd {
	if _, ok := h.FindItem(id); !ok {
		return nil
	}
	if !h.InFlight.Begin(state.Op{Kind: state.OpDelete, ID: id}) {
		return nil
	}

	return h.request(func(ctx context.Context, client *api.Client) tea.Msg {
		err := client.DeleteItem(ctx, id)
		return itemDeletedMsg{id: id, err: err}
	})
}

func (h *Handler) handleItemDeleted(msg itemDeletedMsg) tea.Cmd {
	h.InFlight.Done(state.Op{Kind: state.OpDelete, ID: msg.id})

	if msg.err != nil {
		h.Logger.Error("delete failed", "id", msg.id, "err", msg.err)
		return h.notify("Could not delete todo", msg.err)
	}

	h.RemoveItem(msg.id)
	if h.Editing(msg.id) {
		h.Edit = nil
	}
	h.StatusMsg = "Todo deleted"
	return nil
}
