package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText truncates text to maxWidth with ellipsis.
// Handles edge cases where text is shorter than maxWidth or maxWidth is very small.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	textLen := utf8.RuneCountInString(text)

	if textLen <= maxWidth {
		return text, false
	}

	// Need space for ellipsis
	if maxWidth <= ellipsisLen {
		// Not enough room for any text + ellipsis, just return truncated ellipsis
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	truncLen := maxWidth - ellipsisLen
	return string(runes[:truncLen]) + cfg.Ellipsis, true
}

// TruncateMiddle shortens text by cutting out its middle, keeping the
// head and tail visible: "http://pg6mm...cryd.onion". Onion URLs differ
// mostly at both ends, so this keeps rows distinguishable.
// Returns the truncated text and whether truncation occurred.
func TruncateMiddle(text string, maxWidth int, cfg TextConfig) (string, bool) {
	textLen := utf8.RuneCountInString(text)
	if textLen <= maxWidth {
		return text, false
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	available := maxWidth - ellipsisLen
	if available < 2 {
		return TruncateText(text, maxWidth, cfg)
	}

	runes := []rune(text)
	head := (available + 1) / 2
	tail := available - head
	return string(runes[:head]) + cfg.Ellipsis + string(runes[textLen-tail:]), true
}

// PadRight pads s with spaces to width visible characters.
// Longer strings are returned unchanged.
func PadRight(s string, width int) string {
	n := VisibleLength(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
