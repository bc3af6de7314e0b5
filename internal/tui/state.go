package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/olm/internal/tui/layout"
)

// Mode is what the keyboard currently drives.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAdding
	ModeEditing
	ModeConfirmDelete
)

// MessageType styles the status line.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// Field indexes the inputs of a FormState.
type Field int

const (
	FieldTitle Field = iota
	FieldURL
)

// FormState is a title and URL input pair. The add row and the edit row
// both use it.
type FormState struct {
	TitleInput textinput.Model
	URLInput   textinput.Model
	Focus      Field
}

// NewFormState creates a FormState with initialized inputs.
func NewFormState(cfg layout.InputConfig) FormState {
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = cfg.TitleCharLimit
	titleInput.Width = cfg.TitleWidth
	titleInput.Prompt = ""

	urlInput := textinput.New()
	urlInput.Placeholder = "http://....onion"
	urlInput.CharLimit = cfg.URLCharLimit
	urlInput.Width = cfg.URLWidth
	urlInput.Prompt = ""

	return FormState{
		TitleInput: titleInput,
		URLInput:   urlInput,
	}
}

// Values returns the current title and URL.
func (f *FormState) Values() (title, url string) {
	return f.TitleInput.Value(), f.URLInput.Value()
}

// FocusField focuses one input and blurs the other.
func (f *FormState) FocusField(field Field) tea.Cmd {
	f.Focus = field
	if field == FieldURL {
		f.TitleInput.Blur()
		return f.URLInput.Focus()
	}
	f.URLInput.Blur()
	return f.TitleInput.Focus()
}

// ToggleFocus moves focus to the other input.
func (f *FormState) ToggleFocus() tea.Cmd {
	if f.Focus == FieldTitle {
		return f.FocusField(FieldURL)
	}
	return f.FocusField(FieldTitle)
}

// Blur unfocuses both inputs.
func (f *FormState) Blur() {
	f.TitleInput.Blur()
	f.URLInput.Blur()
}

// Reset clears both inputs.
func (f *FormState) Reset() {
	f.TitleInput.Reset()
	f.URLInput.Reset()
	f.Focus = FieldTitle
}

// Update forwards msg to the focused input.
func (f *FormState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.Focus == FieldURL {
		f.URLInput, cmd = f.URLInput.Update(msg)
	} else {
		f.TitleInput, cmd = f.TitleInput.Update(msg)
	}
	return cmd
}

// EditTarget is the single link being edited. An empty ID means no
// edit is in progress.
type EditTarget struct {
	ID   string
	Form FormState
}

// Active reports whether an edit is in progress.
func (e *EditTarget) Active() bool {
	return e.ID != ""
}

// NewEditTarget builds an idle edit target. The edit inputs carry no
// character limit so stored values longer than the add row's limits
// load untruncated.
func NewEditTarget(cfg layout.InputConfig) EditTarget {
	form := NewFormState(cfg)
	form.TitleInput.CharLimit = 0
	form.URLInput.CharLimit = 0
	return EditTarget{Form: form}
}

// Start loads a link into the edit inputs.
func (e *EditTarget) Start(id, title, url string) tea.Cmd {
	e.ID = id
	e.Form.TitleInput.SetValue(title)
	e.Form.URLInput.SetValue(url)
	e.Form.TitleInput.CursorEnd()
	return e.Form.FocusField(FieldTitle)
}

// Clear ends the edit.
func (e *EditTarget) Clear() {
	e.ID = ""
	e.Form.Blur()
	e.Form.Reset()
}
