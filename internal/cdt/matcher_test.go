package cdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMatch(matches []ScoredMatch, code string) (ScoredMatch, bool) {
	for _, m := range matches {
		if m.Code == code {
			return m, true
		}
	}
	return ScoredMatch{}, false
}

func TestMatch_EmptyInput(t *testing.T) {
	assert.Empty(t, Match(""))
	assert.Empty(t, Match("   \t\n  "))
}

func TestMatch_NoHits(t *testing.T) {
	assert.Empty(t, Match("xyzabc nonsense query"))
}

func TestMatch_ShortTokensIgnored(t *testing.T) {
	// Tokens of three characters or fewer must not influence scoring.
	withArticle := Match("a the of composite")
	alone := Match("composite")

	assert.Equal(t, alone, withArticle)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	upper := Match("ROOT CANAL")
	lower := Match("root canal")

	assert.Equal(t, lower, upper)
}

func TestMatch_CompositePosterior(t *testing.T) {
	matches := Match("composite filling posterior tooth")

	m, ok := findMatch(matches, "D2391")
	require.True(t, ok, "expected a posterior resin-based composite entry")
	assert.GreaterOrEqual(t, m.Score, 1)

	// "composite" and "posterior" both hit, "filling" and "tooth" do not
	assert.Equal(t, 2, m.Score)
}

func TestMatch_RootCanalMolar(t *testing.T) {
	matches := Match("root canal molar")

	m, ok := findMatch(matches, "D3330")
	require.True(t, ok, "expected molar endodontic therapy")
	assert.GreaterOrEqual(t, m.Score, 2)
	assert.Equal(t, 3, m.Score)

	// "molar" is a substring of "premolar", so D3320 scores 3 as well
	// and the tie resolves to table order.
	require.GreaterOrEqual(t, len(matches), 2)
	assert.Equal(t, "D3320", matches[0].Code)
	assert.Equal(t, "D3330", matches[1].Code)
	assert.Equal(t, matches[0].Score, matches[1].Score)
}

func TestMatch_ScoresAccumulatePerToken(t *testing.T) {
	single := Match("molar")
	double := Match("molar molar")

	m1, ok := findMatch(single, "D3330")
	require.True(t, ok)
	m2, ok := findMatch(double, "D3330")
	require.True(t, ok)

	assert.Equal(t, m1.Score+1, m2.Score)
}

func TestMatch_Monotonicity(t *testing.T) {
	base := Match("composite posterior")
	extended := Match("composite posterior restoration")

	for _, m := range base {
		ext, ok := findMatch(extended, m.Code)
		require.True(t, ok, "adding a token must never drop an entry")
		assert.GreaterOrEqual(t, ext.Score, m.Score)
	}
}

func TestMatch_Idempotent(t *testing.T) {
	first := Match("periodontal scaling and root planing")
	second := Match("periodontal scaling and root planing")

	assert.Equal(t, first, second)
}

func TestMatch_SortedByScoreDescending(t *testing.T) {
	matches := Match("root canal molar tooth")
	require.NotEmpty(t, matches)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestMatch_TiesKeepTableOrder(t *testing.T) {
	// Both bitewing entries score 1 on "bitewing" and must come back in
	// table order.
	matches := Match("bitewing")

	var codes []string
	for _, m := range matches {
		if m.Score == 1 && (m.Code == "D0270" || m.Code == "D0272") {
			codes = append(codes, m.Code)
		}
	}
	require.Len(t, codes, 2)
	assert.Equal(t, []string{"D0270", "D0272"}, codes)
}

func TestMatch_ZeroScoreEntriesExcluded(t *testing.T) {
	for _, m := range Match("extraction impacted wisdom") {
		assert.Greater(t, m.Score, 0)
	}
}

func TestMatchAgainst_CustomTable(t *testing.T) {
	table := []CodeEntry{
		{"X1", "widget polishing"},
		{"X2", "widget grinding and polishing"},
	}

	matches := MatchAgainst(table, "polishing widget")
	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].Score)
	assert.Equal(t, 2, matches[1].Score)
}

func TestTopN(t *testing.T) {
	matches := Match("root canal molar tooth")
	require.Greater(t, len(matches), 3)

	top := TopN(matches, 3)
	assert.Len(t, top, 3)
	assert.Equal(t, matches[:3], top)

	assert.Equal(t, matches, TopN(matches, 0))
	assert.Equal(t, matches, TopN(matches, len(matches)+10))
}

func TestReferenceTable_Shape(t *testing.T) {
	require.NotEmpty(t, ReferenceTable)

	seen := make(map[string]bool, len(ReferenceTable))
	for _, entry := range ReferenceTable {
		assert.Regexp(t, `^D\d{4}$`, entry.Code)
		assert.NotEmpty(t, entry.Description)
		assert.False(t, seen[entry.Code], "duplicate code %s", entry.Code)
		seen[entry.Code] = true
	}
}
