// Package fuzzy provides edit-distance matching for command suggestions.
// Used for typo correction on parse failures and for input completion.
package fuzzy

import (
	"math"
	"sort"
	"strings"
)

// Match is a single scored candidate.
type Match struct {
	Candidate string
	Score     float64
	Distance  int
}

// scoreEpsilon is the window inside which two scores count as a tie
// and the shorter edit distance wins.
const scoreEpsilon = 0.01

// neutralScore is assigned to default suggestions for blank input.
const neutralScore = 0.5

// FindMatches scores every candidate against input and returns at most
// maxResults matches with score >= minScore, best first.
//
// Scoring: normalized Levenshtein distance over the lowercased pair,
// boosted by +0.3 when the candidate starts with the input or +0.2 when
// it merely contains it. Boosts are exclusive and scores are clamped
// to [0, 1].
//
// A blank input is not matched at all: the first maxResults candidates
// are returned verbatim with a neutral score, so callers can show
// defaults instead of nothing.
func FindMatches(input string, candidates []string, maxResults int, minScore float64) []Match {
	if maxResults <= 0 {
		return nil
	}

	if strings.TrimSpace(input) == "" {
		n := maxResults
		if n > len(candidates) {
			n = len(candidates)
		}
		defaults := make([]Match, 0, n)
		for _, c := range candidates[:n] {
			defaults = append(defaults, Match{Candidate: c, Score: neutralScore})
		}
		return defaults
	}

	lowerInput := strings.ToLower(input)

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		lowerCand := strings.ToLower(c)
		dist := levenshtein(lowerInput, lowerCand)
		score := baseScore(lowerInput, lowerCand, dist)

		// Prefix boost first; substring boost only when prefix missed.
		if strings.HasPrefix(lowerCand, lowerInput) {
			score = math.Min(1, score+0.3)
		} else if strings.Contains(lowerCand, lowerInput) {
			score = math.Min(1, score+0.2)
		}

		if score >= minScore {
			matches = append(matches, Match{Candidate: c, Score: score, Distance: dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if math.Abs(matches[i].Score-matches[j].Score) <= scoreEpsilon {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// baseScore normalizes an edit distance to [0, 1] where 1 is identical.
func baseScore(a, b string, dist int) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	score := 1 - float64(dist)/float64(longest)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// levenshtein computes the edit distance between two strings using the
// classic two-row dynamic programming formulation over runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
