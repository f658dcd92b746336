package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"maliyet/internal/categorization"

	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
)

// Format selects how command output is written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ErrUnknownFormat is returned by ParseFormat for anything but table, json or plain.
var ErrUnknownFormat = errors.New("unknown output format")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatPlain:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (use table, json or plain)", ErrUnknownFormat, s)
}

// OptionView is a category option together with its badge class.
type OptionView struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Badge string `json:"badge"`
}

// Resolution is the outcome of resolving one free-form label.
type Resolution struct {
	Input    string `json:"input"`
	Category string `json:"category,omitempty"` // empty when the label is not a known category
	Label    string `json:"label"`
	Badge    string `json:"badge"`
}

// Resolve resolves a single label.
func Resolve(input string) Resolution {
	res := Resolution{
		Input: input,
		Label: categorization.LabelOf(input),
		Badge: categorization.BadgeClass(input),
	}
	if c, ok := categorization.Parse(input); ok {
		res.Category = string(c)
	}
	return res
}

// Renderer writes options and resolutions to w in a fixed format.
type Renderer struct {
	w      io.Writer
	format Format
	badges *BadgeStyles
}

// New creates a renderer. color controls whether styled badges use colors;
// when w is not a terminal lipgloss drops them regardless.
func New(w io.Writer, format Format, color bool) *Renderer {
	return &Renderer{
		w:      w,
		format: format,
		badges: NewBadgeStyles(w, color),
	}
}

// Options writes the category option list.
func (r *Renderer) Options(opts []categorization.CategoryOption) error {
	views := make([]OptionView, len(opts))
	for i, opt := range opts {
		views[i] = OptionView{Value: opt.Value, Label: opt.Label, Badge: categorization.BadgeClass(opt.Value)}
	}

	switch r.format {
	case FormatJSON:
		return r.writeJSON(views)
	case FormatPlain:
		for _, v := range views {
			if _, err := fmt.Fprintf(r.w, "%s\t%s\n", v.Value, v.Label); err != nil {
				return fmt.Errorf("failed to write option %s: %w", v.Value, err)
			}
		}
		return nil
	default:
		t := r.newTable()
		t.AppendHeader(table.Row{"#", "Value", "Label", "Badge"})
		for i, v := range views {
			t.AppendRow(table.Row{i + 1, v.Value, v.Label, v.Badge})
		}
		t.Render()
		return nil
	}
}

// Resolutions writes resolved labels. With styled set, labels are drawn as
// colored badges in the plain and table formats; JSON is never styled.
func (r *Renderer) Resolutions(results []Resolution, styled bool) error {
	switch r.format {
	case FormatJSON:
		if results == nil {
			results = []Resolution{}
		}
		return r.writeJSON(results)
	case FormatPlain:
		for _, res := range results {
			line := res.Badge
			if styled {
				line = r.badges.Render(res.Label, categorization.Badge(res.Badge)) + "\t" + res.Badge
			}
			if _, err := fmt.Fprintln(r.w, line); err != nil {
				return fmt.Errorf("failed to write badge for %q: %w", res.Input, err)
			}
		}
		return nil
	default:
		t := r.newTable()
		t.AppendHeader(table.Row{"Input", "Category", "Label", "Badge"})
		for _, res := range results {
			label := res.Label
			if styled {
				label = r.badges.Render(res.Label, categorization.Badge(res.Badge))
			}
			category := res.Category
			if category == "" {
				category = "-"
			}
			t.AppendRow(table.Row{res.Input, category, label, res.Badge})
		}
		t.Render()
		return nil
	}
}

// Choice writes a single picked option with its badge class. Plain output is
// "value<TAB>badge", prefixed by the styled label when styled is set.
func (r *Renderer) Choice(opt categorization.CategoryOption, styled bool) error {
	badge := categorization.ResolveBadge(opt.Value)
	view := OptionView{Value: opt.Value, Label: opt.Label, Badge: badge.String()}

	switch r.format {
	case FormatJSON:
		return r.writeJSON(view)
	case FormatPlain:
		line := view.Value + "\t" + view.Badge
		if styled {
			line = r.badges.Render(view.Label, badge) + "\t" + line
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return fmt.Errorf("failed to write choice %s: %w", view.Value, err)
		}
		return nil
	default:
		label := view.Label
		if styled {
			label = r.badges.Render(view.Label, badge)
		}
		t := r.newTable()
		t.AppendHeader(table.Row{"Value", "Label", "Badge"})
		t.AppendRow(table.Row{view.Value, label, view.Badge})
		t.Render()
		return nil
	}
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	return t
}

func (r *Renderer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	if _, err := r.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
