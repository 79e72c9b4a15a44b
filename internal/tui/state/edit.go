package state

import "github.com/charmbracelet/bubbles/textinput"

// EditTarget is the single item being edited together with its buffer.
// A nil *EditTarget means nothing is being edited.
type EditTarget struct {
	ID    int64
	Input textinput.Model
}

// NewEditTarget starts an edit buffer for item id filled with title.
func NewEditTarget(id int64, title string) *EditTarget {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256
	input.Width = 50
	input.SetValue(title)
	input.Focus()
	return &EditTarget{ID: id, Input: input}
}

// Buffer returns the text currently typed for the item.
func (e *EditTarget) Buffer() string {
	return e.Input.Value()
}

// Notice is a blocking message the user has to dismiss.
type Notice struct {
	Title   string
	Message string
}
