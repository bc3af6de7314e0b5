package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/olm/internal/model"
	"github.com/nikbrunner/olm/internal/tui/layout"
)

// AppTitle is shown at the top of the screen.
const AppTitle = "Onion Link Manager"

// renderView creates the complete single-column view.
func (a App) renderView() string {
	if a.mode == ModeConfirmDelete {
		return a.renderConfirmDelete()
	}

	contentWidth := a.width - 4 // app padding: left=2, right=2

	sections := []string{
		a.styles.Title.Render(AppTitle),
		a.renderPath(contentWidth),
		a.renderAddRow(),
		"",
		a.renderSeparator(contentWidth),
		a.renderList(contentWidth),
		a.renderSeparator(contentWidth),
		a.renderMessageLine(),
		a.renderHints(a.getContextualHints()),
	}

	content := a.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderPath shows where the collection is stored, truncated in the middle.
func (a App) renderPath(width int) string {
	path, _ := layout.TruncateMiddle(a.links.Path(), width, a.layoutConfig.Text)
	return a.styles.Path.Render(path)
}

func (a App) renderAddRow() string {
	label := a.styles.Help
	if a.mode == ModeAdding {
		label = a.styles.Label
	}
	return label.Render("Add ") +
		label.Render("Title: ") + a.add.TitleInput.View() + "  " +
		label.Render("URL: ") + a.add.URLInput.View()
}

func (a App) renderSeparator(width int) string {
	if width < 1 {
		width = 1
	}
	return a.styles.Separator.Render(strings.Repeat("─", width))
}

// renderList renders the visible window of link rows.
func (a App) renderList(width int) string {
	rows := layout.CalculateListRows(a.height, a.layoutConfig.List)

	if len(a.items) == 0 {
		return a.styles.Empty.Render("(no links yet, press a to add one)")
	}

	cols := layout.CalculateColumns(width, a.layoutConfig.List)
	offset := layout.CalculateViewportOffset(a.cursor, len(a.items), rows)

	var lines []string
	for i := offset; i < len(a.items) && i < offset+rows; i++ {
		link := a.items[i]
		if a.edit.Active() && link.ID == a.edit.ID {
			lines = append(lines, a.renderEditRow())
			continue
		}
		lines = append(lines, a.renderRow(link, i == a.cursor && a.mode == ModeIdle, cols))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one link as "> title  url  v3".
func (a App) renderRow(link model.Link, isCursor bool, cols layout.Columns) string {
	title, _ := layout.TruncateText(link.Title, cols.Title, a.layoutConfig.Text)
	url, _ := layout.TruncateMiddle(link.URL, cols.URL, a.layoutConfig.Text)
	badge := model.DetectOnion(link.URL).String()

	marker := "  "
	if isCursor {
		marker = "> "
	}

	title = layout.PadRight(title, cols.Title)
	url = layout.PadRight(url, cols.URL)
	badge = layout.PadRight(badge, cols.Badge)

	if isCursor {
		// One style across the row so the highlight is unbroken.
		return a.styles.ItemSelected.Render(marker + title + "  " + url + " " + badge)
	}

	badgeStyle := a.styles.BadgeLegacy
	if model.DetectOnion(link.URL) == model.OnionV3 {
		badgeStyle = a.styles.BadgeV3
	}
	return marker + a.styles.Item.Render(title) + "  " + a.styles.URL.Render(url) + " " + badgeStyle.Render(badge)
}

// renderEditRow replaces the edited link's row with its two inputs.
func (a App) renderEditRow() string {
	return a.styles.Label.Render("> ") +
		a.edit.Form.TitleInput.View() + "  " +
		a.edit.Form.URLInput.View()
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	switch a.messageType {
	case MessageError:
		return a.styles.Error.Render("✗ " + a.messageText)
	case MessageSuccess:
		return a.styles.Success.Render("✓ " + a.messageText)
	}
	if a.messageText == "" && a.links.Dirty() {
		return a.styles.Error.Render("✗ unsaved changes (press r to retry)")
	}
	return a.styles.Help.Render(a.messageText)
}

// renderConfirmDelete renders the delete confirmation modal.
func (a App) renderConfirmDelete() string {
	link, _ := a.links.Get(a.deleteID)

	modalWidth := layout.ConfirmWidth(a.width, a.layoutConfig.Modal)

	var content strings.Builder
	content.WriteString(a.styles.Title.Render("Delete link?"))
	content.WriteString("\n\n")
	content.WriteString(a.styles.Item.Render(link.Title))
	content.WriteString("\n\n")
	content.WriteString(a.styles.Help.Render("This action cannot be undone."))
	content.WriteString("\n\n")
	content.WriteString(a.renderHintsInline([]Hint{
		{Key: "enter/y", Desc: "confirm"},
		{Key: "esc/n", Desc: "cancel"},
	}))

	modal := lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		a.styles.Modal.Width(modalWidth).Render(content.String()),
	)
	return modal
}
