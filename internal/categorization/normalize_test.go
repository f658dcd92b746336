package categorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{nil, ""},
		{"", ""},
		{"  Metal  ", "metal"},
		{"AHŞAP", "ahşap"},
		{"AHS\u0327AP", "ahşap"},
		{"\uFEFF Cam\r\n", "cam"},
		{42, "42"},
		{true, "true"},
		{"HAR\u0130TA", "hari\u0307ta"},
		{"HARI\u0307TA", "hari\u0307ta"},
		{[]byte("cam"), "[99 97 109]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input), "Normalize(%#v)", tt.input)
	}
}

func TestNormalize_KeepsInnerWhitespace(t *testing.T) {
	assert.Equal(t, "ahşap  masa", Normalize(" Ahşap  Masa "))
}
