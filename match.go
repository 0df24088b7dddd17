package countries

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// maxFuzzyDistance caps NameOptions.FuzzyDistance. Beyond 3 edits short
// country names start matching almost anything.
const maxFuzzyDistance = 3

// fold returns the Unicode case-folded form of s, so that "ÉTATS-UNIS" and
// "États-Unis" compare equal. A cases.Caser is stateful and must not be
// shared between goroutines, hence one per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// containsFold reports whether substr occurs in s ignoring case. The needle
// is expected to be folded already.
func containsFold(s, foldedSubstr string) bool {
	return strings.Contains(fold(s), foldedSubstr)
}

// fuzzyMatch reports whether the folded query is within maxDist edits of the
// candidate or of one of its words. Queries of two characters or fewer never
// match fuzzily.
func fuzzyMatch(foldedQuery, candidate string, maxDist int) bool {
	if maxDist <= 0 || len([]rune(foldedQuery)) <= 2 || candidate == "" {
		return false
	}
	c := fold(candidate)
	if levenshtein.ComputeDistance(foldedQuery, c) <= maxDist {
		return true
	}
	for _, word := range strings.Fields(c) {
		word = strings.Trim(word, ",.()'")
		if len([]rune(word)) > 2 && levenshtein.ComputeDistance(foldedQuery, word) <= maxDist {
			return true
		}
	}
	return false
}
