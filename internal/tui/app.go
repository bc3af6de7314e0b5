package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/olm/internal/links"
	"github.com/nikbrunner/olm/internal/model"
	"github.com/nikbrunner/olm/internal/tui/layout"
)

// App is the main bubbletea model for the link manager.
type App struct {
	links        *links.Service
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	clipboard    func(string) error
	logger       *slog.Logger

	mode   Mode
	cursor int          // selected row
	items  []model.Link // snapshot of the store, refreshed after each mutation

	add         FormState
	edit        EditTarget
	deleteID    string // link awaiting delete confirmation
	lastKeyWasG bool   // for gg command

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Links        *links.Service
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Clipboard    func(string) error   // optional, uses the system clipboard if nil
	Logger       *slog.Logger         // optional, discards if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	copyFn := params.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	app := App{
		links:        params.Links,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		clipboard:    copyFn,
		logger:       logger,
		mode:         ModeIdle,
		add:          NewFormState(layoutConfig.Input),
		edit:         NewEditTarget(layoutConfig.Input),
		width:        80,
		height:       24,
	}

	app.refreshItems()
	return app
}

// refreshItems re-reads the store and keeps the cursor in range.
func (a *App) refreshItems() {
	a.items = a.links.List()
	if a.cursor >= len(a.items) {
		a.cursor = len(a.items) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// selectID moves the cursor to the link with the given ID, if present.
func (a *App) selectID(id string) {
	for i, l := range a.items {
		if l.ID == id {
			a.cursor = i
			return
		}
	}
}

// selected returns the link under the cursor.
func (a App) selected() (model.Link, bool) {
	if len(a.items) == 0 || a.cursor >= len(a.items) {
		return model.Link{}, false
	}
	return a.items[a.cursor], true
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Items returns the current list of links.
func (a App) Items() []model.Link {
	return a.items
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// EditingID returns the ID of the link being edited, or "".
func (a App) EditingID() string {
	return a.edit.ID
}

// Message returns the status line text.
func (a App) Message() string {
	return a.messageText
}

func (a *App) setMessage(kind MessageType, text string) {
	a.messageType = kind
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
	a.messageType = MessageInfo
}

// reportError shows err on the status line. Save failures keep the
// change in memory and point at the retry key.
func (a *App) reportError(err error) {
	if errors.Is(err, links.ErrSaveFailed) {
		a.setMessage(MessageError, fmt.Sprintf("%v (press r to retry)", err))
		return
	}
	a.setMessage(MessageError, err.Error())
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeAdding:
			return a.updateAdding(msg)
		case ModeEditing:
			return a.updateEditing(msg)
		case ModeConfirmDelete:
			return a.updateConfirmDelete(msg)
		default:
			return a.updateIdle(msg)
		}
	}

	return a, nil
}

func (a App) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}

	// Reset g flag for any other key
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if len(a.items) > 0 && a.cursor < len(a.items)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.items) > 0 {
			a.cursor = len(a.items) - 1
		}

	case key.Matches(msg, a.keys.Copy):
		a.copySelected()

	case key.Matches(msg, a.keys.Add):
		a.clearMessage()
		a.mode = ModeAdding
		return a, a.add.FocusField(FieldTitle)

	case key.Matches(msg, a.keys.Edit):
		link, ok := a.selected()
		if !ok {
			return a, nil
		}
		a.clearMessage()
		a.mode = ModeEditing
		return a, a.edit.Start(link.ID, link.Title, link.URL)

	case key.Matches(msg, a.keys.Delete):
		link, ok := a.selected()
		if !ok {
			return a, nil
		}
		a.clearMessage()
		a.deleteID = link.ID
		a.mode = ModeConfirmDelete

	case key.Matches(msg, a.keys.Retry):
		if !a.links.Dirty() {
			return a, nil
		}
		if err := a.links.Save(); err != nil {
			a.reportError(err)
		} else {
			a.setMessage(MessageSuccess, "Saved")
		}
	}

	return a, nil
}

func (a *App) copySelected() {
	link, ok := a.selected()
	if !ok {
		return
	}
	if err := a.clipboard(link.URL); err != nil {
		a.logger.Warn("clipboard write failed", "err", err)
		a.setMessage(MessageError, "Copy failed: "+err.Error())
		return
	}
	a.setMessage(MessageSuccess, fmt.Sprintf("Copied URL of %q", link.Title))
}

func (a App) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.add.Blur()
		a.add.Reset()
		a.mode = ModeIdle
		return a, nil

	case key.Matches(msg, a.keys.NextField):
		return a, a.add.ToggleFocus()

	case key.Matches(msg, a.keys.Submit):
		title, url := a.add.Values()
		link, ok, err := a.links.Add(title, url)
		if !ok && err == nil {
			// Empty input is skipped without feedback.
			return a, nil
		}
		if ok {
			a.refreshItems()
			a.selectID(link.ID)
			a.add.Reset()
		}
		if err != nil {
			a.reportError(err)
		} else {
			a.setMessage(MessageSuccess, fmt.Sprintf("Added %q", link.Title))
		}
		return a, a.add.FocusField(FieldTitle)
	}

	return a, a.add.Update(msg)
}

func (a App) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.edit.Clear()
		a.mode = ModeIdle
		return a, nil

	case key.Matches(msg, a.keys.NextField):
		return a, a.edit.Form.ToggleFocus()

	case key.Matches(msg, a.keys.DeleteEdited):
		id := a.edit.ID
		a.edit.Clear()
		a.mode = ModeIdle
		a.deleteByID(id)
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		title, url := a.edit.Form.Values()
		link, err := a.links.EditByID(a.edit.ID, title, url)
		if err != nil && !errors.Is(err, links.ErrSaveFailed) {
			// Conflict, empty field or invalid URL: stay in the row.
			a.reportError(err)
			return a, nil
		}
		a.edit.Clear()
		a.mode = ModeIdle
		a.refreshItems()
		a.selectID(link.ID)
		if err != nil {
			a.reportError(err)
		} else {
			a.setMessage(MessageSuccess, fmt.Sprintf("Saved %q", link.Title))
		}
		return a, nil
	}

	return a, a.edit.Form.Update(msg)
}

func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		id := a.deleteID
		a.deleteID = ""
		a.mode = ModeIdle
		a.deleteByID(id)

	case key.Matches(msg, a.keys.Cancel), msg.String() == "n":
		a.deleteID = ""
		a.mode = ModeIdle
	}
	return a, nil
}

func (a *App) deleteByID(id string) {
	link, _ := a.links.Get(id)

	deleted, err := a.links.DeleteByID(id)
	a.refreshItems()
	switch {
	case err != nil:
		a.reportError(err)
	case deleted:
		a.setMessage(MessageSuccess, fmt.Sprintf("Deleted %q", link.Title))
	}
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
