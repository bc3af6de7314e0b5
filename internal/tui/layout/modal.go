package layout

// ConfirmWidth returns the width of the delete confirmation box:
// WidthPercent of the terminal, kept within MinWidth..MaxWidth and never
// closer than two columns to either edge.
func ConfirmWidth(terminalWidth int, cfg ModalConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100
	width = min(max(width, cfg.MinWidth), cfg.MaxWidth)
	return max(min(width, terminalWidth-4), 1)
}
