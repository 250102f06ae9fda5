// Package normalize builds the join key used to match room inventory records
// against schedule entries. The two are entered by different actors with
// inconsistent formatting ("Lab A-1" vs "lab a.1"), so matching is a
// best-effort fuzzy join on the canonical form, not an exact comparison.
package normalize

import (
	"strings"
	"unicode"
)

// Key canonicalizes a free-text room name for equality matching:
// lower-case, with whitespace, periods, ampersands and hyphens removed.
// Empty input maps to the empty string. Key is idempotent. The result is a
// join key only and is never displayed.
func Key(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case ' ', '\t', '\n', '\r', '.', '&', '-':
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
