package categorization

// Badge is a CSS class name that styles a category tag.
type Badge string

const (
	BadgeMetal   Badge = "badge-metal"
	BadgeAhsap   Badge = "badge-ahsap"
	BadgeCam     Badge = "badge-cam"
	BadgeHarita  Badge = "badge-harita"
	BadgeMobilya Badge = "badge-mobilya"

	// BadgeDefault is used for anything that is not a known category.
	BadgeDefault Badge = "badge-default"
)

func (b Badge) String() string { return string(b) }

// keys maps normalized labels to categories. Only ahsap has a second
// spelling, with the Turkish ş.
var keys = map[string]Category{
	"metal":   Metal,
	"ahsap":   Ahsap,
	"ahşap":   Ahsap,
	"cam":     Cam,
	"harita":  Harita,
	"mobilya": Mobilya,
}

var categoryBadges = map[Category]Badge{
	Metal:   BadgeMetal,
	Ahsap:   BadgeAhsap,
	Cam:     BadgeCam,
	Harita:  BadgeHarita,
	Mobilya: BadgeMobilya,
}

// Parse resolves a free-form label to its category.
func Parse(input any) (Category, bool) {
	c, ok := keys[Normalize(input)]
	return c, ok
}

// BadgeClass returns the badge class for an arbitrary category label.
// It never fails: unknown, empty and non-string inputs get BadgeDefault.
func BadgeClass(input any) string {
	return string(ResolveBadge(input))
}

// ResolveBadge is BadgeClass with a typed result.
func ResolveBadge(input any) Badge {
	c, ok := Parse(input)
	if !ok {
		return BadgeDefault
	}
	return c.Badge()
}

// LabelOf returns the display label for a category label. Known categories
// get their canonical label ("AHSAP" -> "Ahşap"); anything else is returned
// trimmed but otherwise as given.
func LabelOf(input any) string {
	if c, ok := Parse(input); ok {
		return c.Label()
	}
	return trim(stringOf(input))
}
