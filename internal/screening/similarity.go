package screening

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Algorithm selects how two canonical names are compared.
type Algorithm string

const (
	// AlgorithmRatio scores the two full strings by edit distance.
	AlgorithmRatio Algorithm = "ratio"
	// AlgorithmTokenSortRatio sorts whitespace tokens before scoring,
	// making the comparison word-order insensitive.
	AlgorithmTokenSortRatio Algorithm = "token_sort_ratio"
	// AlgorithmTokenSetRatio compares token-set intersection and
	// differences, robust to one name being a token superset of the other.
	AlgorithmTokenSetRatio Algorithm = "token_set_ratio"
)

// ParseAlgorithm reports whether s names a known algorithm. The scorer
// itself tolerates unknown values (they degrade to ratio); this exists so
// configuration loading can reject typos up front.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch Algorithm(s) {
	case AlgorithmRatio, AlgorithmTokenSortRatio, AlgorithmTokenSetRatio:
		return Algorithm(s), true
	}
	return AlgorithmRatio, false
}

// Score returns the similarity of two canonical strings on a 0..100 scale
// under the selected algorithm. Unknown algorithm values silently fall
// back to ratio; a bad selector must never abort a screening run.
func Score(a, b string, algorithm Algorithm) float64 {
	switch algorithm {
	case AlgorithmTokenSortRatio:
		return ratio(sortTokens(a), sortTokens(b))
	case AlgorithmTokenSetRatio:
		return tokenSetRatio(a, b)
	default:
		return ratio(a, b)
	}
}

// ratio is Levenshtein similarity normalized by the longer string's rune
// length: identical strings score 100, wholly dissimilar ones 0.
func ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return (1 - float64(distance)/float64(maxLen)) * 100
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// tokenSetRatio builds three comparison strings from the token sets of a
// and b (intersection, intersection plus each side's surplus tokens) and
// returns the best pairwise ratio. Symmetric by construction.
func tokenSetRatio(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	// An empty token set only matches another empty one; without this the
	// empty intersection would compare equal to the empty side.
	if len(setA) == 0 || len(setB) == 0 {
		if len(setA) == len(setB) {
			return 100
		}
		return 0
	}

	var intersection, onlyA, onlyB []string
	for token := range setA {
		if setB[token] {
			intersection = append(intersection, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range setB {
		if !setA[token] {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(intersection)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	t0 := strings.Join(intersection, " ")
	t1 := strings.TrimSpace(t0 + " " + strings.Join(onlyA, " "))
	t2 := strings.TrimSpace(t0 + " " + strings.Join(onlyB, " "))

	best := ratio(t0, t1)
	if s := ratio(t0, t2); s > best {
		best = s
	}
	if s := ratio(t1, t2); s > best {
		best = s
	}
	return best
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(s) {
		set[token] = true
	}
	return set
}
