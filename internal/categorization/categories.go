// Package categorization holds the fixed product category set and maps
// free-form category labels onto the badge classes used to style them.
//
// Everything in this package is immutable after package initialization and
// safe for concurrent use.
package categorization

// Category is the canonical key of a product category.
type Category string

const (
	Metal   Category = "metal"
	Ahsap   Category = "ahsap"
	Cam     Category = "cam"
	Harita  Category = "harita"
	Mobilya Category = "mobilya"
)

// CategoryOption is a value/label pair for a category selection list.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// options is the display order of the selection list.
var options = []CategoryOption{
	{Value: string(Metal), Label: "Metal"},
	{Value: string(Ahsap), Label: "Ahşap"},
	{Value: string(Cam), Label: "Cam"},
	{Value: string(Harita), Label: "Harita"},
	{Value: string(Mobilya), Label: "Mobilya"},
}

// Options returns the category options in display order.
// The returned slice is a copy; modifying it does not affect the package table.
func Options() []CategoryOption {
	out := make([]CategoryOption, len(options))
	copy(out, options)
	return out
}

// Values returns just the canonical category keys, in display order.
func Values() []Category {
	values := make([]Category, len(options))
	for i, opt := range options {
		values[i] = Category(opt.Value)
	}
	return values
}

// Lookup returns the option for a canonical key.
// The key must match exactly; use Parse for free-form labels.
func Lookup(value Category) (CategoryOption, bool) {
	for _, opt := range options {
		if opt.Value == string(value) {
			return opt, true
		}
	}
	return CategoryOption{}, false
}

// Label returns the human-readable label of the category, or the key itself
// if it is not one of the known categories.
func (c Category) Label() string {
	if opt, ok := Lookup(c); ok {
		return opt.Label
	}
	return string(c)
}

// Badge returns the badge class for the category.
func (c Category) Badge() Badge {
	if b, ok := categoryBadges[c]; ok {
		return b
	}
	return BadgeDefault
}
