// Package canonical derives the normalized player-name strings used as the
// join key across performance, salary, and draft sources.
//
// Canonicalization is a pure function of the raw name and is idempotent.
// Distinct players whose names normalize to the same string are silently
// merged; the sources carry no stable shared identifier, so this is a known
// limitation rather than a handled case.
package canonical

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// stripMarks removes diacritics by decomposing and dropping the
	// combining marks (e.g. "Dončić" -> "Doncic").
	stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	suffixRe     = regexp.MustCompile(`(?i)\b(jr|sr|ii|iii|iv|v)\b`)
	nonAlnumRe   = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	punctReplacer = strings.NewReplacer(".", "", ",", "", "'", "", "-", " ")
)

// Name normalizes a raw player name for cross-source joining: diacritics,
// punctuation, and generational suffixes are removed, hyphens become spaces,
// and the result is lowercased with collapsed whitespace.
func Name(raw string) string {
	name, _, err := transform.String(stripMarks, raw)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw
		// bytes so the record still gets a deterministic key.
		name = raw
	}

	name = punctReplacer.Replace(name)
	name = suffixRe.ReplaceAllString(name, "")
	name = nonAlnumRe.ReplaceAllString(name, "")
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.ToLower(strings.TrimSpace(name))
}
