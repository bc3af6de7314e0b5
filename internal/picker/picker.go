// Package picker is a one-shot list selector for choosing a link from
// the command line.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/olm/internal/model"
	"github.com/nikbrunner/olm/internal/tui/layout"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

// linesPerItem is title plus URL.
const linesPerItem = 2

// chromeLines covers header, blank lines and footer.
const chromeLines = 5

// Picker is a simple TUI for selecting one link.
type Picker struct {
	links     []model.Link
	header    string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker over links with the given header line.
func New(links []model.Link, header string) Picker {
	return Picker{
		links:  links,
		header: header,
		cursor: 0,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			if len(p.links) == 0 {
				p.cancelled = true
			} else {
				p.selected = true
			}
			return p, tea.Quit

		case tea.KeyDown:
			p.moveDown()
			return p, nil

		case tea.KeyUp:
			p.moveUp()
			return p, nil
		}

		// Handle j/k vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.moveDown()
				return p, nil
			case "k":
				p.moveUp()
				return p, nil
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) moveDown() {
	if p.cursor < len(p.links)-1 {
		p.cursor++
	}
}

func (p *Picker) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder
	textCfg := layout.DefaultConfig().Text

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d links)", p.header, len(p.links))))
	b.WriteString("\n\n")

	maxVisible := (p.height - chromeLines) / linesPerItem
	if maxVisible < 1 {
		maxVisible = 1
	}
	start := layout.CalculateViewportOffset(p.cursor, len(p.links), maxVisible)
	end := min(start+maxVisible, len(p.links))

	for i := start; i < end; i++ {
		link := p.links[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title, _ := layout.TruncateText(link.Title, p.width-2, textCfg)
		url, _ := layout.TruncateText(link.URL, p.width-3, textCfg)

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(title)))
		b.WriteString(fmt.Sprintf("   %s\n", urlStyle.Render(url)))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("j/k: move  Enter: copy URL  q/Esc: cancel"))

	return b.String()
}

// Selected returns the chosen link. ok is false if the user cancelled.
func (p Picker) Selected() (link model.Link, ok bool) {
	if p.cancelled || !p.selected {
		return model.Link{}, false
	}
	if p.cursor < len(p.links) {
		return p.links[p.cursor], true
	}
	return model.Link{}, false
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
