package categorization

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// dottedCapitalI lowercases to i followed by a combining dot above, not to a
// bare i. strings.ToLower alone would turn "HARİTA" into "harita".
var dottedCapitalI = strings.NewReplacer("\u0130", "i\u0307")

// Normalize converts an arbitrary value into a lookup key: its string form
// (empty for nil), NFC-composed, trimmed and lowercased.
//
// Values that are not strings go through fmt, so Stringer and error
// implementations contribute their text. fmt recovers panics raised by a
// String method, which keeps Normalize total.
func Normalize(input any) string {
	return strings.ToLower(dottedCapitalI.Replace(trim(norm.NFC.String(stringOf(input)))))
}

func stringOf(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// trim strips leading and trailing white space, including the byte order mark
// that spreadsheet exports tend to leave on the first cell.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
