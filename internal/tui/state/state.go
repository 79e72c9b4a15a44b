package state

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/hy4ri/tasklist-tui/internal/api"
	"github.com/hy4ri/tasklist-tui/internal/config"
)

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config
	Logger *slog.Logger

	// Data, in server order
	Items []api.Item

	// Sync state
	Loading  bool
	LoadErr  error
	InFlight InFlight

	// Creation input
	ShowInput bool
	NewTitle  textinput.Model

	// Edit mode
	Edit *EditTarget

	// UI state
	Notice    *Notice
	StatusMsg string
	Cursor    int
	Width     int
	Height    int
	ShowHelp  bool

	// Components
	Spinner  spinner.Model
	Keymap   KeymapData
	KeyState *KeyState
}

// New returns a State ready for the first Load.
func New(client *api.Client, cfg *config.Config, logger *slog.Logger) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "Enter todo..."
	input.CharLimit = 256
	input.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &State{
		Client:   client,
		Config:   cfg,
		Logger:   logger,
		Items:    []api.Item{},
		InFlight: make(InFlight),
		NewTitle: input,
		Spinner:  sp,
		Keymap:   KeymapFor(cfg.UI.VimMode),
		KeyState: &KeyState{},
	}
}

// Editing reports whether item id is in edit mode.
func (s *State) Editing(id int64) bool {
	return s.Edit != nil && s.Edit.ID == id
}
