package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Path         lipgloss.Style
	Label        lipgloss.Style
	Separator    lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	URL          lipgloss.Style
	BadgeV3      lipgloss.Style
	BadgeLegacy  lipgloss.Style // v2 and non-onion
	Empty        lipgloss.Style
	Modal        lipgloss.Style
	Help         lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "copy URL", "move")
	Success      lipgloss.Style
	Error        lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	// Industrial color palette
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // separators
	danger := lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}
	ok := lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Path: lipgloss.NewStyle().
			Foreground(subtle),

		Label: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(border),

		Item: lipgloss.NewStyle().
			Foreground(primary),

		ItemSelected: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		URL: lipgloss.NewStyle().
			Foreground(subtle),

		BadgeV3: lipgloss.NewStyle().
			Foreground(accent),

		BadgeLegacy: lipgloss.NewStyle().
			Foreground(subtle),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		Help: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Success: lipgloss.NewStyle().
			Foreground(ok).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(danger).
			Bold(true),
	}
}
