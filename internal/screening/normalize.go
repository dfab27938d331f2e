// Package screening implements the name-matching engine: canonicalization
// of free-text names and similarity scoring of a company roster against a
// flattened sanctions watchlist.
package screening

import "strings"

// legalSuffixes are stripped from names before comparison. Order matters:
// it reproduces the screening fixtures, including INC stripping before
// INCORPORATED is ever seen.
var legalSuffixes = []string{
	"LTD", "LIMITED", "INC", "INCORPORATED", "CORP", "CORPORATION",
	"LLC", "GMBH", "SA", "SPA", "AG", "NV", "BV", "SP Z OO", "SP. Z O.O.",
}

var punctReplacer = strings.NewReplacer(".", "", ",", "", "-", "")

// Normalize converts a raw name into its canonical comparison form:
// uppercase, legal-entity suffixes stripped, the characters `.`, `,` and
// `-` removed, and whitespace collapsed. Unusable input yields "" and
// callers must skip it rather than score it.
//
// Suffix stripping removes every occurrence of " "+suffix and "."+suffix
// as literal substrings. It is intentionally not word-boundary-anchored:
// a suffix token can match inside a longer token. Anchoring it would
// silently change match outcomes, so the looser behavior is kept.
func Normalize(raw string) string {
	name := strings.ToUpper(raw)

	for _, suffix := range legalSuffixes {
		name = strings.ReplaceAll(name, " "+suffix, "")
		name = strings.ReplaceAll(name, "."+suffix, "")
	}

	name = punctReplacer.Replace(name)

	return strings.Join(strings.Fields(name), " ")
}
