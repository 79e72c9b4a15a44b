package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasklist-tui/internal/api"
	"github.com/hy4ri/tasklist-tui/internal/tui/state"
	"github.com/hy4ri/tasklist-tui/internal/tui/styles"
)

// Renderer draws the state. It never mutates it.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	content := r.renderMainView()

	switch {
	case r.Notice != nil:
		content = r.renderNotice()
	case r.ShowHelp:
		content = r.renderHelp()
	}

	return content
}

// renderMainView renders the header, the list and the status bar.
func (r *Renderer) renderMainView() string {
	header := r.renderHeader()
	bottomBar := r.renderStatusBar()

	listHeight := r.Height - lipgloss.Height(header) - lipgloss.Height(bottomBar)
	list := r.renderList(r.Width-2, listHeight)
	list = lipgloss.Place(r.Width, max(listHeight, 0), lipgloss.Left, lipgloss.Top, list)

	return lipgloss.JoinVertical(lipgloss.Left, header, list, bottomBar)
}

func (r *Renderer) renderHeader() string {
	var b strings.Builder

	title := styles.Title.Render("Todos")
	if r.Loading {
		title += " " + styles.Spinner.Render(r.Spinner.View())
	}
	b.WriteString(title)

	if r.LoadErr != nil {
		b.WriteString("\n")
		msg := strings.ReplaceAll(r.LoadErr.Error(), "\n", " ")
		b.WriteString(styles.Banner.Render(truncateString("Failed to load todos: "+msg, r.Width-2)))
		b.WriteString("\n")
		b.WriteString(styles.HelpDesc.Render(fmt.Sprintf("Press %s to retry", r.Keymap.Refresh.Key)))
	}

	if r.ShowInput {
		b.WriteString("\n")
		box := styles.InputLabel.Render("New todo") + "\n" + r.NewTitle.View()
		if r.InFlight.Has(state.Op{Kind: state.OpCreate}) {
			box += " " + styles.ItemBusy.Render(r.Spinner.View()+"adding")
		}
		b.WriteString(styles.InputFocused.Render(box))
	}

	return b.String()
}

// renderList renders the visible rows, keeping the cursor in view.
func (r *Renderer) renderList(width, height int) string {
	if len(r.Items) == 0 {
		if r.Loading {
			return styles.HelpDesc.Render("Loading todos...")
		}
		return styles.HelpDesc.Render(fmt.Sprintf("No todos. Press %s to add one.", r.Keymap.AddItem.Key))
	}

	if height < 1 {
		height = 1
	}
	start := 0
	if r.Cursor >= height {
		start = r.Cursor - height + 1
	}
	end := min(start+height, len(r.Items))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderItem(r.Items[i], i == r.Cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderItem(item api.Item, selected bool, width int) string {
	cursor := "  "
	rowStyle := styles.Item
	if selected {
		cursor = "> "
		rowStyle = styles.ItemSelected
	}

	checkbox := styles.CheckboxUnchecked
	if item.Completed {
		checkbox = styles.CheckboxChecked
	}

	created := ""
	if !item.CreatedAt.IsZero() {
		created = styles.ItemCreated.Render(item.CreatedAt.Display())
	}

	busy := ""
	if r.InFlight.Busy(item.ID) {
		busy = styles.ItemBusy.Render(r.Spinner.View())
	}

	prefix := cursor + checkbox + " "

	var title string
	if r.Editing(item.ID) {
		title = r.Edit.Input.View()
	} else {
		avail := width - lipgloss.Width(prefix) - lipgloss.Width(created) - lipgloss.Width(busy) - 2
		title = truncateString(item.Title, max(avail, 8))
		if item.Completed {
			title = styles.ItemCompleted.Render(title)
		}
	}

	return rowStyle.Render(prefix + title + created + busy)
}

// renderStatusBar renders the bottom status bar.
func (r *Renderer) renderStatusBar() string {
	left := ""
	if r.StatusMsg != "" {
		msgStr := strings.ReplaceAll(r.StatusMsg, "\n", " ")
		left = styles.StatusBarSuccess.Render(msgStr)
	}

	var hints []string
	switch {
	case r.Edit != nil:
		hints = []string{hint("enter", "save"), hint("esc", "cancel")}
	case r.ShowInput:
		hints = []string{hint("enter", "add"), hint("esc", "cancel")}
	default:
		hints = []string{
			hint(r.Keymap.AddItem.Key, "add"),
			hint(r.Keymap.ToggleItem.Key, "done"),
			hint(r.Keymap.EditItem.Key, "edit"),
			hint("dd", "delete"),
			hint(r.Keymap.Help.Key, "keys"),
		}
	}
	right := strings.Join(hints, " ")

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := styles.StatusBar.GetHorizontalFrameSize()

	maxLeftWidth := r.Width - rightWidth - padding - 4
	if leftWidth > maxLeftWidth && maxLeftWidth > 10 {
		left = truncateString(left, maxLeftWidth)
		leftWidth = lipgloss.Width(left)
	}

	spacing := max(r.Width-leftWidth-rightWidth-padding, 0)

	return styles.StatusBar.Width(r.Width - padding).Render(left + strings.Repeat(" ", spacing) + right)
}

func hint(key, desc string) string {
	return styles.StatusBarKey.Render(key) + styles.StatusBarText.Render(":"+desc)
}
