// Package slug derives stable, accent-stripped identifiers from display
// names. Slugs act as the fuzzy join key between fan-typed track names and
// the canonical setlist catalog, so Make must be pure, deterministic and
// never fail on any input.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters (NFKD) and removes the combining
// marks, so "BOGOTÁ" and "BOGOTA" reduce to the same byte sequence.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Fallback is returned when normalization leaves nothing usable, e.g. for
// empty or all-punctuation input.
const Fallback = "track"

// Make converts free text into a slug: accents stripped, lower-cased, every
// run of non-alphanumeric characters collapsed into a single "-", leading and
// trailing separators trimmed. Applying Make to its own output is a no-op.
func Make(value string) string {
	stripped, _, err := transform.String(stripMarks, value)
	if err != nil {
		// transform only fails on malformed UTF-8; fall through with the
		// original bytes so the function stays total.
		stripped = value
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingSep = false
		} else {
			pendingSep = true
		}
	}

	if b.Len() == 0 {
		return Fallback
	}
	return b.String()
}
