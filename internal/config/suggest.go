package config

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to input, or "" when nothing is
// close enough to be a likely typo.
func Suggest(candidates []string, input string) string {
	input = strings.ToLower(input)
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(input, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(input)/3) {
		return ""
	}
	return best
}
