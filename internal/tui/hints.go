package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "enter")
	Desc string // Short description (e.g., "move", "copy")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move y:copy a:add"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "enter confirm  esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, gg/G)
	Edit   []Hint // Edit hints (a, e, d)
	Action []Hint // Action hints (y, enter, tab)
	System []Hint // System hints (r, q, esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeIdle:
		return a.getIdleHints()
	case ModeAdding:
		return HintSet{
			Nav:    []Hint{{Key: "tab", Desc: "next"}},
			Action: []Hint{{Key: "enter", Desc: "add"}},
			System: []Hint{{Key: "esc", Desc: "done"}},
		}
	case ModeEditing:
		return HintSet{
			Nav:    []Hint{{Key: "tab", Desc: "next"}},
			Action: []Hint{{Key: "enter", Desc: "save"}},
			Edit:   []Hint{{Key: "ctrl+d", Desc: "del"}},
			System: []Hint{{Key: "esc", Desc: "cancel"}},
		}
	case ModeConfirmDelete:
		// Hints are shown inside the modal itself.
		return HintSet{}
	default:
		return HintSet{}
	}
}

// getIdleHints returns hints for ModeIdle (list browse).
func (a App) getIdleHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
		},
		Action: []Hint{
			{Key: "y", Desc: "copy"},
		},
		Edit: []Hint{
			{Key: "a", Desc: "add"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "del"},
		},
		System: []Hint{
			{Key: "q", Desc: "quit"},
		},
	}
	if a.links.Dirty() {
		hints.System = append([]Hint{{Key: "r", Desc: "retry save"}}, hints.System...)
	}
	return hints
}
