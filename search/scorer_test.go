package search

import (
	"testing"

	"github.com/poiesic/searchkit/core"
	"github.com/stretchr/testify/assert"
)

func scoringConfig(fuzzy bool) core.IndexConfig {
	return core.NewIndexConfig(
		core.WithFuzzy(fuzzy),
		core.WithFields(
			core.ScoringField{Name: "title", Boost: 3.0, Analyzer: core.AnalyzerText},
			core.ScoringField{Name: "description", Boost: 1.5, Analyzer: core.AnalyzerText},
		),
	)
}

func doc(content string, boost float64, fields map[string]any) *core.IndexedDocument {
	if fields == nil {
		fields = map[string]any{}
	}
	return &core.IndexedDocument{
		ID:      core.IDFromContent(content),
		Content: content,
		Fields:  fields,
		Boost:   boost,
	}
}

func TestScore_EmptyTerms(t *testing.T) {
	scorer := NewScorer(scoringConfig(false))
	assert.Zero(t, scorer.Score(doc("write unit tests", 1.0, nil), nil))
	assert.Zero(t, scorer.Score(doc("write unit tests", 1.0, nil), []string{}))
}

func TestScore_ExactSubstring(t *testing.T) {
	scorer := NewScorer(scoringConfig(false))

	score := scorer.Score(doc("write unit tests", 1.0, nil), []string{"tests"})
	assert.InDelta(t, exactMatchBonus, score, 1e-9)

	assert.Zero(t, scorer.Score(doc("write unit tests", 1.0, nil), []string{"deploy"}))
}

func TestScore_FieldBoosts(t *testing.T) {
	scorer := NewScorer(scoringConfig(false))
	d := doc("write unit tests", 1.0, map[string]any{
		"title":       "Write unit tests",
		"description": "Cover the scorer",
	})

	// Exact content hit plus the title field boost.
	score := scorer.Score(d, []string{"tests"})
	assert.InDelta(t, exactMatchBonus+3.0, score, 1e-9)

	// Hit in both fields.
	score = scorer.Score(d, []string{"write"})
	assert.InDelta(t, exactMatchBonus+3.0, score, 1e-9)

	score = scorer.Score(d, []string{"scorer"})
	assert.InDelta(t, 1.5, score, 1e-9) // description only; not in content
}

func TestScore_KeywordAnalyzerIsCaseSensitive(t *testing.T) {
	cfg := core.NewIndexConfig(
		core.WithFuzzy(false),
		core.WithFields(core.ScoringField{Name: "status", Boost: 2.0, Analyzer: core.AnalyzerKeyword}),
	)
	scorer := NewScorer(cfg)
	d := doc("pending", 1.0, map[string]any{"status": "Pending"})

	// The lowercase term does not match the verbatim field value, but still
	// hits the lowercase content.
	assert.InDelta(t, exactMatchBonus, scorer.Score(d, []string{"pending"}), 1e-9)
}

func TestScore_StaticBoostMultiplier(t *testing.T) {
	scorer := NewScorer(scoringConfig(false))

	plain := scorer.Score(doc("write unit tests", 1.0, nil), []string{"tests"})
	boosted := scorer.Score(doc("write integration tests", 1.2, nil), []string{"tests"})

	// Equal term hits; the boosted document ranks first.
	assert.Greater(t, boosted, plain)
	assert.InDelta(t, plain*1.2, boosted, 1e-9)
}

func TestScore_Monotonicity(t *testing.T) {
	scorer := NewScorer(scoringConfig(false))
	terms := []string{"index", "rebuild"}

	without := scorer.Score(doc("profile the index", 1.0, nil), terms)
	with := scorer.Score(doc("profile the index rebuild", 1.0, nil), terms)

	assert.GreaterOrEqual(t, with, without)
}

func TestScore_FuzzyTypo(t *testing.T) {
	d := doc("tests", 1.0, nil)

	// "testz" vs "tests": distance 1, similarity 0.8 > 0.6 threshold.
	fuzzy := NewScorer(scoringConfig(true))
	score := fuzzy.Score(d, []string{"testz"})
	assert.InDelta(t, 0.8*core.DefaultFuzzyWeight, score, 1e-9)

	exact := NewScorer(scoringConfig(false))
	assert.Zero(t, exact.Score(d, []string{"testz"}))
}

func TestScore_FuzzyBelowThreshold(t *testing.T) {
	scorer := NewScorer(scoringConfig(true))

	// "cat" vs "tests": similarity well below the threshold.
	assert.Zero(t, scorer.Score(doc("tests", 1.0, nil), []string{"cat"}))
}

func TestScore_FuzzyKeepsBestWordOnly(t *testing.T) {
	scorer := NewScorer(scoringConfig(true))

	// Both words clear the threshold; only the best contribution counts.
	score := scorer.Score(doc("tests testz", 1.0, nil), []string{"testz"})
	// Exact substring hit plus a perfect fuzzy match on "testz".
	assert.InDelta(t, exactMatchBonus+1.0*core.DefaultFuzzyWeight, score, 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewScorer(scoringConfig(true))
	d := doc("write unit tests for the scorer", 1.3, map[string]any{"title": "Write unit tests"})
	terms := []string{"unit", "tesst", "scorer"}

	first := scorer.Score(d, terms)
	for range 10 {
		assert.Equal(t, first, scorer.Score(d, terms))
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"tests", "testz", 1},
		{"tesst", "tests", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "levenshtein(%q, %q)", tt.a, tt.b)
	}
}
