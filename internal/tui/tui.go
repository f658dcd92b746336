package tui

import (
	"fmt"
	"io"
	"strings"

	"maliyet/internal/categorization"
	"maliyet/internal/render"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is a single-choice category picker.
type Model struct {
	options  []categorization.CategoryOption
	badges   *render.BadgeStyles
	cursor   int
	chosen   bool
	quitting bool
}

// NewModel returns a picker over options with the cursor on the first entry.
func NewModel(options []categorization.CategoryOption, badges *render.BadgeStyles) Model {
	return Model{options: options, badges: badges}
}

// Init is the first command that will be run. We don't need any.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses. Enter picks the highlighted option; q, esc and
// ctrl+c leave without a choice.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter", " ":
		if len(m.options) > 0 {
			m.chosen = true
			return m, tea.Quit
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if len(m.options) > 0 {
			m.cursor = len(m.options) - 1
		}
	}
	return m, nil
}

// View renders the option list with the cursor and each option's badge.
func (m Model) View() string {
	if m.chosen || m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("Kategori seçin:\n\n")
	for i, opt := range m.options {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		badge := categorization.ResolveBadge(opt.Value)
		fmt.Fprintf(&b, "%s %s  %s\n", cursor, m.badges.Render(opt.Label, badge), badge)
	}
	b.WriteString("\n[↑/k] Up | [↓/j] Down | [enter] Select | [q] Quit\n")
	return b.String()
}

// Choice returns the picked option, if any.
func (m Model) Choice() (categorization.CategoryOption, bool) {
	if !m.chosen || m.cursor >= len(m.options) {
		return categorization.CategoryOption{}, false
	}
	return m.options[m.cursor], true
}

// Run starts the picker reading keys from in and drawing on out, and returns
// the final model once the user picks or quits.
func Run(m Model, in io.Reader, out io.Writer) (Model, error) {
	p := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("error running picker: %w", err)
	}
	return final.(Model), nil
}
