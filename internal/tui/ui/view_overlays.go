package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasklist-tui/internal/tui/styles"
)

// renderNotice renders the blocking failure notice centered on screen.
func (r *Renderer) renderNotice() string {
	modalWidth := min(60, r.Width-4)

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(r.Notice.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(modalWidth - 6).Render(r.Notice.Message))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Press enter to dismiss"))

	content := styles.DialogError.Width(modalWidth).Render(b.String())
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, content)
}

// renderHelp renders the keyboard shortcuts.
func (r *Renderer) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("⌨️  Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, item := range r.Keymap.HelpItems() {
		key, desc := item[0], item[1]
		switch {
		case key == "" && desc == "":
			b.WriteString("\n")
		case desc == "":
			b.WriteString(styles.Subtitle.Render(key) + "\n")
		default:
			b.WriteString(styles.HelpKey.Render(lipgloss.NewStyle().Width(12).Render(key)))
			b.WriteString(styles.HelpDesc.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("Press ? or esc to close"))

	content := styles.Dialog.Render(b.String())
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, content)
}
