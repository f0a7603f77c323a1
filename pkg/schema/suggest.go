package schema

import "strings"

// suggestThreshold is the minimum similarity between an unmatched header and
// an alias before the field is offered as a suggestion.
const suggestThreshold = 0.6

// Suggest returns the canonical field whose alias set sits closest to the
// given unmatched column header, by normalized Levenshtein similarity, along
// with the score. Purely informational: it never feeds the automatic
// mapping, only the manual-override prompt. The second result is false when
// nothing clears the threshold.
func Suggest(column string) (Field, bool) {
	candidate := strings.ToLower(strings.TrimSpace(column))
	if candidate == "" {
		return "", false
	}

	best, bestScore := Field(""), 0.0
	for _, f := range Fields {
		for _, a := range aliases[f] {
			if s := similarity(candidate, strings.ToLower(a)); s > bestScore {
				best, bestScore = f, s
			}
		}
	}
	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}

// similarity is 1 - dist/maxLen, in [0, 1].
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	aLen := len([]rune(a))
	bLen := len([]rune(b))
	maxLen := aLen
	if bLen > maxLen {
		maxLen = bLen
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes the edit distance between a and b using two rows of
// the dynamic-programming matrix.
func levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}
	if len(ar) > len(br) {
		ar, br = br, ar
	}

	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(br); j++ {
		curr[0] = j
		for i := 1; i <= len(ar); i++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ar)]
}
