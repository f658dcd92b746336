package categorization

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kategori string

type labelStringer struct{ label string }

func (l labelStringer) String() string { return l.label }

type nilStringer struct{ label string }

func (n *nilStringer) String() string { return n.label }

type panicStringer struct{}

func (panicStringer) String() string { panic("boom") }

func TestBadgeClass(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"title case", "Metal", "badge-metal"},
		{"upper case", "CAM", "badge-cam"},
		{"turkish upper with padding", " AHŞAP ", "badge-ahsap"},
		{"ascii ahsap", "ahsap", "badge-ahsap"},
		{"turkish ahşap", "ahşap", "badge-ahsap"},
		{"decomposed ahşap", "ahs\u0327ap", "badge-ahsap"},
		{"decomposed upper", "AHS\u0327AP", "badge-ahsap"},
		{"harita", "harita", "badge-harita"},
		{"mobilya mixed case", "MoBiLyA", "badge-mobilya"},
		{"tabs and newlines", "\t metal \n", "badge-metal"},
		{"non-breaking space", "\u00a0cam\u00a0", "badge-cam"},
		{"byte order mark", "\uFEFFharita", "badge-harita"},
		{"named string type", kategori("Cam"), "badge-cam"},
		{"category constant", Metal, "badge-metal"},
		{"stringer", labelStringer{" Harita "}, "badge-harita"},
		{"error text", errors.New("metal"), "badge-metal"},

		{"empty", "", "badge-default"},
		{"only spaces", "   ", "badge-default"},
		{"nil", nil, "badge-default"},
		{"int", 123, "badge-default"},
		{"zero", 0, "badge-default"},
		{"bool", false, "badge-default"},
		{"float", 3.14, "badge-default"},
		{"struct", struct{ Name string }{"metal"}, "badge-default"},
		{"map", map[string]string{"kategori": "metal"}, "badge-default"},
		{"slice", []string{"metal"}, "badge-default"},
		{"unknown word", "plastik", "badge-default"},
		{"substring", "metal kutu", "badge-default"},
		{"inner space", "ah sap", "badge-default"},
		{"badge class itself", BadgeMetal, "badge-default"},
		{"dotted capital I", "HAR\u0130TA", "badge-default"},
		{"dotted capital I in mobilya", "MOB\u0130LYA", "badge-default"},
		{"decomposed dotted capital I", "HARI\u0307TA", "badge-default"},
		{"byte slice", []byte("Mobilya"), "badge-default"},
		{"rune slice", []rune("metal"), "badge-default"},
		{"nil pointer stringer", (*nilStringer)(nil), "badge-default"},
		{"panicking stringer", panicStringer{}, "badge-default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			require.NotPanics(t, func() { got = BadgeClass(tt.input) })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBadgeClass_ConcurrentUse(t *testing.T) {
	inputs := []any{"Metal", " AHŞAP ", nil, 123, "CAM", "harita", "Mobilya"}
	want := []string{"badge-metal", "badge-ahsap", "badge-default", "badge-default", "badge-cam", "badge-harita", "badge-mobilya"}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				for i, in := range inputs {
					if got := BadgeClass(in); got != want[i] {
						t.Errorf("BadgeClass(%v) = %q, want %q", in, got, want[i])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestParse(t *testing.T) {
	c, ok := Parse(" Ahşap")
	require.True(t, ok)
	assert.Equal(t, Ahsap, c)

	c, ok = Parse("MOBILYA")
	require.True(t, ok)
	assert.Equal(t, Mobilya, c)

	_, ok = Parse("ağaç")
	assert.False(t, ok)
	_, ok = Parse(nil)
	assert.False(t, ok)
}

func TestLabelOf(t *testing.T) {
	assert.Equal(t, "Ahşap", LabelOf("AHSAP"))
	assert.Equal(t, "Metal", LabelOf(" metal "))
	assert.Equal(t, "Plastik Kasa", LabelOf("  Plastik Kasa "))
	assert.Equal(t, "", LabelOf(nil))
	assert.Equal(t, "42", LabelOf(42))
}
