package layout

// Columns holds the widths of one link row.
type Columns struct {
	Title int
	URL   int
	Badge int
}

// CalculateListRows computes how many link rows fit on screen.
// Returns at least MinRows.
func CalculateListRows(terminalHeight int, cfg ListConfig) int {
	rows := terminalHeight - cfg.HeaderLines - cfg.FooterLines
	if rows < cfg.MinRows {
		return cfg.MinRows
	}
	return rows
}

// CalculateColumns splits the terminal width into title, URL and badge
// columns. The URL column gets whatever the title leaves.
func CalculateColumns(terminalWidth int, cfg ListConfig) Columns {
	usable := terminalWidth - cfg.RowPadding - cfg.BadgeWidth
	if usable < 2 {
		usable = 2
	}

	title := usable * cfg.TitleWidthPercent / 100
	if title < cfg.MinTitleWidth {
		title = cfg.MinTitleWidth
	}
	if title > usable-1 {
		title = usable - 1
	}

	return Columns{
		Title: title,
		URL:   usable - title,
		Badge: cfg.BadgeWidth,
	}
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
