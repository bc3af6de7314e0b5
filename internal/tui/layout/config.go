package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	List  ListConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// ListConfig holds the dimensions of the link list.
type ListConfig struct {
	// HeaderLines is everything above the rows.
	// Accounts for: app padding (1) + title (1) + path (1) + add row (2) + separator (1) = 6
	HeaderLines int

	// FooterLines is everything below the rows.
	// Accounts for: separator (1) + status (1) + hint bar (1) = 3
	FooterLines int

	// MinRows is the minimum number of visible rows.
	MinRows int

	// TitleWidthPercent is the title column's share of the row width.
	TitleWidthPercent int

	// MinTitleWidth keeps short titles readable on narrow terminals.
	MinTitleWidth int

	// BadgeWidth is the onion version column ("v3 ").
	BadgeWidth int

	// RowPadding is the cursor marker plus the gaps between columns.
	RowPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as a share of the terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	TitleCharLimit int
	URLCharLimit   int

	// Display widths
	TitleWidth int
	URLWidth   int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		List: ListConfig{
			HeaderLines:       6,
			FooterLines:       3,
			MinRows:           3,
			TitleWidthPercent: 35,
			MinTitleWidth:     12,
			BadgeWidth:        3,
			RowPadding:        6,
		},
		Modal: ModalConfig{
			WidthPercent: 50,
			MinWidth:     40,
			MaxWidth:     80,
		},
		Input: InputConfig{
			TitleCharLimit: 100,
			URLCharLimit:   500,
			TitleWidth:     20,
			URLWidth:       30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
