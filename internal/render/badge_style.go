package render

import (
	"io"

	"maliyet/internal/categorization"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// badgeColors are the terminal counterparts of the web badge classes.
var badgeColors = map[categorization.Badge]lipgloss.Color{
	categorization.BadgeMetal:   lipgloss.Color("#64748b"),
	categorization.BadgeAhsap:   lipgloss.Color("#a16207"),
	categorization.BadgeCam:     lipgloss.Color("#0891b2"),
	categorization.BadgeHarita:  lipgloss.Color("#15803d"),
	categorization.BadgeMobilya: lipgloss.Color("#7c3aed"),
}

const defaultBadgeColor = lipgloss.Color("#6b7280")

// BadgeStyles draws category labels as colored terminal badges.
type BadgeStyles struct {
	renderer *lipgloss.Renderer
}

// NewBadgeStyles creates badge styles for output written to w.
func NewBadgeStyles(w io.Writer, color bool) *BadgeStyles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &BadgeStyles{renderer: r}
}

// Style returns the style for a badge class. Unknown classes share the
// default badge color.
func (s *BadgeStyles) Style(b categorization.Badge) lipgloss.Style {
	bg, ok := badgeColors[b]
	if !ok {
		bg = defaultBadgeColor
	}
	return s.renderer.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("#ffffff")).
		Background(bg)
}

// Render draws label with the style of b.
func (s *BadgeStyles) Render(label string, b categorization.Badge) string {
	if label == "" {
		label = "?"
	}
	return s.Style(b).Render(label)
}
