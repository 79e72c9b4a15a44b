package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the list view.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Actions
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key

	// Item actions
	AddItem    Key
	EditItem   Key
	DeleteItem Key
	ToggleItem Key
	CopyItem   Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "r", Help: "refresh"},

		AddItem:    Key{Key: "a", Help: "add todo"},
		EditItem:   Key{Key: "e", Help: "edit title"},
		DeleteItem: Key{Key: "d", Help: "delete (dd)"},
		ToggleItem: Key{Key: "x", Help: "complete/uncomplete"},
		CopyItem:   Key{Key: "y", Help: "copy title (yy)"},
	}
}

// PlainKeymap drops the Vim motions; arrows, home and end still work.
func PlainKeymap() KeymapData {
	km := DefaultKeymap()
	km.Up = Key{Key: "up", Help: "up"}
	km.Down = Key{Key: "down", Help: "down"}
	km.Top = Key{Key: "home", Help: "top"}
	km.Bottom = Key{Key: "end", Help: "bottom"}
	return km
}

// KeymapFor picks the keymap matching the vim_mode setting.
func KeymapFor(vim bool) KeymapData {
	if vim {
		return DefaultKeymap()
	}
	return PlainKeymap()
}

// KeyState tracks multi-key sequences (like 'gg', 'dd' or 'yy').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == "g" {
			return "top", true
		}
	}

	if ks.WaitingD {
		ks.WaitingD = false
		if key == "d" {
			return "delete", true
		}
	}

	if ks.WaitingY {
		ks.WaitingY = false
		if key == "y" {
			return "copy", true
		}
	}

	// Multi-key sequence starts
	switch {
	case key == "g" && keymap.Top.Key == "g":
		ks.WaitingG = true
		ks.LastKey = key
		return "", true
	case key == keymap.DeleteItem.Key:
		ks.WaitingD = true
		ks.LastKey = key
		return "", true
	case key == keymap.CopyItem.Key:
		ks.WaitingY = true
		ks.LastKey = key
		return "", true
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Top.Key, "home":
		return "top", true
	case keymap.Bottom.Key, "end":
		return "bottom", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Quit.Key, "ctrl+c":
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.AddItem.Key:
		return "add", true
	case keymap.EditItem.Key, "enter":
		return "edit", true
	case keymap.ToggleItem.Key, " ":
		return "toggle", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	top := "gg"
	if k.Top.Key != "g" {
		top = k.Top.Key
	}
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{top + "/" + k.Bottom.Key, "Go to top/bottom"},
		{"", ""},
		{"Todo Actions", ""},
		{k.AddItem.Key, "Add todo (toggle input)"},
		{k.EditItem.Key + "/enter", "Edit title"},
		{k.ToggleItem.Key + "/space", "Complete/uncomplete"},
		{"dd", "Delete todo"},
		{"yy", "Copy title to clipboard"},
		{"", ""},
		{"General", ""},
		{k.Refresh.Key, "Reload list"},
		{k.Help.Key, "Toggle help"},
		{k.Back.Key, "Cancel / dismiss"},
		{k.Quit.Key, "Quit"},
	}
}
