package cdt

import (
	"sort"
	"strings"
)

// Tokens shorter than this never influence scoring. Filters out
// articles and tooth-number fragments ("a", "of", "the", "#14").
const minTokenLen = 4

// ScoredMatch is one reference entry scored against a query.
type ScoredMatch struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}

// Match scores the reference table against a free-text clinical
// description and returns the hits ranked by descending score. Ties
// keep table order. Empty or whitespace-only input yields no matches.
func Match(input string) []ScoredMatch {
	return MatchAgainst(ReferenceTable, input)
}

// MatchAgainst scores an arbitrary table against the input. Each query
// token of at least minTokenLen characters adds one point to every
// entry whose description contains it, case-insensitively. Scores
// accumulate per token; entries with score zero are dropped.
func MatchAgainst(entries []CodeEntry, input string) []ScoredMatch {
	tokens := tokenize(input)
	if len(tokens) == 0 {
		return []ScoredMatch{}
	}

	matches := make([]ScoredMatch, 0, 8)
	for _, entry := range entries {
		desc := strings.ToLower(entry.Description)

		score := 0
		for _, token := range tokens {
			if strings.Contains(desc, token) {
				score++
			}
		}

		if score > 0 {
			matches = append(matches, ScoredMatch{
				Code:        entry.Code,
				Description: entry.Description,
				Score:       score,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// TopN returns at most n best matches. n <= 0 means no limit.
func TopN(matches []ScoredMatch, n int) []ScoredMatch {
	if n <= 0 || n >= len(matches) {
		return matches
	}
	return matches[:n]
}

func tokenize(input string) []string {
	fields := strings.Fields(strings.ToLower(input))

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
