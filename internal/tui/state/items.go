package state

import (
	"slices"

	"github.com/hy4ri/tasklist-tui/internal/api"
)

// The item list is never mutated in place. Every change builds a new slice, so
// a slice handed out earlier keeps showing the state it was taken from.

// Snapshot returns a value copy of the current item list.
func (s *State) Snapshot() []api.Item {
	return slices.Clone(s.Items)
}

// Restore replaces the item list with a previously taken snapshot.
func (s *State) Restore(snapshot []api.Item) {
	s.Items = slices.Clone(snapshot)
	s.settle()
}

// ReplaceItems replaces the whole list, keeping server order.
func (s *State) ReplaceItems(items []api.Item) {
	s.Items = slices.Clone(items)
	s.settle()
}

// settle re-establishes what a wholesale list change may break: the cursor
// range and an edit target whose item is gone.
func (s *State) settle() {
	s.clampCursor()
	if s.Edit != nil && s.indexOf(s.Edit.ID) < 0 {
		s.Edit = nil
	}
}

// FindItem returns the item with the given identity.
func (s *State) FindItem(id int64) (api.Item, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return api.Item{}, false
	}
	return s.Items[i], true
}

// UpdateItem replaces the item with the given identity by fn(item).
// It reports whether the item was present.
func (s *State) UpdateItem(id int64, fn func(api.Item) api.Item) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	next := slices.Clone(s.Items)
	next[i] = fn(next[i])
	s.Items = next
	return true
}

// RemoveItem drops the item with the given identity.
func (s *State) RemoveItem(id int64) bool {
	if s.indexOf(id) < 0 {
		return false
	}
	s.Items = slices.DeleteFunc(slices.Clone(s.Items), func(it api.Item) bool {
		return it.ID == id
	})
	s.clampCursor()
	return true
}

// SelectedItem returns the item under the cursor.
func (s *State) SelectedItem() (api.Item, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return api.Item{}, false
	}
	return s.Items[s.Cursor], true
}

func (s *State) indexOf(id int64) int {
	return slices.IndexFunc(s.Items, func(it api.Item) bool { return it.ID == id })
}

func (s *State) clampCursor() {
	if s.Cursor >= len(s.Items) {
		s.Cursor = max(0, len(s.Items)-1)
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}
