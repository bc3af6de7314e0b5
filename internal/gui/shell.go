package gui

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/nikbrunner/olm/internal/links"
	"github.com/nikbrunner/olm/internal/model"
)

// Shell is the main window content. Every callback runs on the Fyne
// main goroutine, so the service needs no locking.
type Shell struct {
	window    fyne.Window
	links     *links.Service
	logger    *slog.Logger
	clipboard fyne.Clipboard

	// Add row
	titleEntry *widget.Entry
	urlEntry   *widget.Entry
	addBtn     *widget.Button

	list   *fyne.Container
	rows   []*linkRow
	status *widget.Label

	// At most one row is in edit mode.
	editingID string
}

// ShellParams holds parameters for NewShell.
type ShellParams struct {
	Window    fyne.Window
	Links     *links.Service
	Logger    *slog.Logger   // optional, discards if nil
	Clipboard fyne.Clipboard // optional, uses the app clipboard if nil
}

// NewShell builds the UI and sets it as the window content.
func NewShell(params ShellParams) *Shell {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	clip := params.Clipboard
	if clip == nil {
		clip = fyne.CurrentApp().Clipboard()
	}

	s := &Shell{
		window:    params.Window,
		links:     params.Links,
		logger:    logger,
		clipboard: clip,
	}

	s.window.SetTitle(WindowTitle)
	s.window.SetContent(s.build())
	return s
}

// build creates and arranges all components.
func (s *Shell) build() fyne.CanvasObject {
	s.titleEntry = widget.NewEntry()
	s.titleEntry.SetPlaceHolder(TitlePlaceholder)

	s.urlEntry = widget.NewEntry()
	s.urlEntry.SetPlaceHolder(URLPlaceholder)
	// Enter in the URL field adds, like the button
	s.urlEntry.OnSubmitted = func(string) {
		s.onAdd()
	}

	s.addBtn = widget.NewButton(AddLabel, s.onAdd)
	s.addBtn.Importance = widget.HighImportance

	addRow := container.NewBorder(nil, nil, nil, s.addBtn,
		container.NewGridWithColumns(2, s.titleEntry, s.urlEntry))

	path := widget.NewLabel(s.links.Path())
	path.Importance = widget.LowImportance
	path.Truncation = fyne.TextTruncateEllipsis

	s.status = widget.NewLabel("")
	s.status.Truncation = fyne.TextTruncateEllipsis

	s.list = container.NewVBox()
	s.refresh()

	top := container.NewVBox(path, addRow, widget.NewSeparator())
	return container.NewBorder(top, s.status, nil, nil, container.NewVScroll(s.list))
}

// refresh rebuilds every row from the service.
func (s *Shell) refresh() {
	all := s.links.List()

	s.rows = s.rows[:0]
	objects := make([]fyne.CanvasObject, 0, len(all))
	for _, l := range all {
		r := newLinkRow(l, s, l.ID == s.editingID)
		s.rows = append(s.rows, r)
		objects = append(objects, r.object)
	}

	s.list.Objects = objects
	s.list.Refresh()
}

func (s *Shell) setStatus(text string) {
	s.status.SetText(text)
}

// onAdd adds the entry values. Empty input is skipped without a message.
func (s *Shell) onAdd() {
	_, added, err := s.links.Add(s.titleEntry.Text, s.urlEntry.Text)
	if err != nil {
		s.reportError(err)
		if !errors.Is(err, links.ErrSaveFailed) {
			return
		}
	}
	if !added {
		return
	}

	s.titleEntry.SetText("")
	s.urlEntry.SetText("")
	s.refresh()
	s.window.Canvas().Focus(s.titleEntry)
}

func (s *Shell) copyURL(l model.Link) {
	s.clipboard.SetContent(l.URL)
	s.setStatus(fmt.Sprintf(StatusCopied, l.Title))
}

// startEdit puts the row with id into edit mode, leaving any other
// edited row without saving it.
func (s *Shell) startEdit(id string) {
	s.editingID = id
	s.refresh()
}

func (s *Shell) cancelEdit() {
	s.editingID = ""
	s.refresh()
}

// saveEdit applies the edited row. On a conflict or invalid input the
// row stays open so the user can fix it.
func (s *Shell) saveEdit(id, title, rawURL string) {
	_, err := s.links.EditByID(id, title, rawURL)
	if err != nil && !errors.Is(err, links.ErrSaveFailed) {
		s.reportError(err)
		return
	}

	s.editingID = ""
	s.refresh()
	if err != nil {
		s.reportError(err)
	}
}

func (s *Shell) onDelete(id string) {
	if id == s.editingID {
		s.editingID = ""
	}
	deleted, err := s.links.DeleteByID(id)
	if deleted {
		s.refresh()
	}
	if err != nil {
		s.reportError(err)
	}
}

// reportError shows err in the status line. A failed save also offers
// a retry, since the change is still held in memory.
func (s *Shell) reportError(err error) {
	s.logger.Warn("action failed", "err", err)
	s.setStatus(err.Error())

	if !errors.Is(err, links.ErrSaveFailed) {
		return
	}
	dialog.ShowConfirm(RetryTitle,
		err.Error()+"\n\nRetry?",
		func(retry bool) {
			if retry {
				s.retrySave()
			}
		},
		s.window)
}

func (s *Shell) retrySave() {
	if err := s.links.Save(); err != nil {
		s.reportError(err)
		return
	}
	s.setStatus(StatusSaved)
}

// linkRow is one list entry, in view or edit mode.
type linkRow struct {
	link   model.Link
	object fyne.CanvasObject

	// View mode
	url       *widget.Hyperlink
	editBtn   *widget.Button
	deleteBtn *widget.Button

	// Edit mode
	titleEntry *widget.Entry
	urlEntry   *widget.Entry
	saveBtn    *widget.Button
	cancelBtn  *widget.Button
}

func newLinkRow(l model.Link, s *Shell, editing bool) *linkRow {
	r := &linkRow{link: l}
	id := l.ID

	r.deleteBtn = widget.NewButton(DeleteLabel, func() { s.onDelete(id) })
	r.deleteBtn.Importance = widget.DangerImportance

	if editing {
		r.titleEntry = widget.NewEntry()
		r.titleEntry.SetText(l.Title)
		r.urlEntry = widget.NewEntry()
		r.urlEntry.SetText(l.URL)

		save := func() { s.saveEdit(id, r.titleEntry.Text, r.urlEntry.Text) }
		r.urlEntry.OnSubmitted = func(string) { save() }
		r.saveBtn = widget.NewButton(SaveLabel, save)
		r.saveBtn.Importance = widget.HighImportance
		r.cancelBtn = widget.NewButton(CancelLabel, s.cancelEdit)

		r.object = container.NewBorder(nil, nil, nil,
			container.NewHBox(r.saveBtn, r.cancelBtn, r.deleteBtn),
			container.NewGridWithColumns(2, r.titleEntry, r.urlEntry))
		return r
	}

	title := widget.NewLabel(l.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}

	// Tapping copies; opening .onion needs Tor Browser anyway.
	parsed, _ := url.Parse(l.URL)
	r.url = widget.NewHyperlink(l.URL, parsed)
	r.url.Truncation = fyne.TextTruncateEllipsis
	r.url.OnTapped = func() { s.copyURL(l) }

	badge := widget.NewLabel(model.DetectOnion(l.URL).String())
	badge.Importance = widget.LowImportance

	r.editBtn = widget.NewButton(EditLabel, func() { s.startEdit(id) })

	r.object = container.NewBorder(nil, nil, title,
		container.NewHBox(badge, r.editBtn, r.deleteBtn),
		r.url)
	return r
}
