package search

import (
	"strings"

	"github.com/poiesic/searchkit/core"
)

// exactMatchBonus is the fixed contribution for a term occurring as a
// substring of the document content. Fuzzy contributions are scaled relative
// to this by the configured fuzzy weight.
const exactMatchBonus = 1.0

// Scorer computes relevance scores for indexed documents against a set of
// normalized query terms. It is pure: scoring a document has no side effects,
// so callers may score documents in parallel.
type Scorer struct {
	fields         []core.ScoringField
	fuzzy          bool
	fuzzyThreshold float64
	fuzzyWeight    float64
}

// NewScorer creates a scorer from the provider's index configuration.
func NewScorer(cfg core.IndexConfig) *Scorer {
	threshold := cfg.FuzzyThreshold
	if threshold == 0 {
		threshold = core.DefaultFuzzyThreshold
	}
	weight := cfg.FuzzyWeight
	if weight == 0 {
		weight = core.DefaultFuzzyWeight
	}
	return &Scorer{
		fields:         cfg.Fields,
		fuzzy:          cfg.Fuzzy,
		fuzzyThreshold: threshold,
		fuzzyWeight:    weight,
	}
}

// Score computes the relevance of doc for the given query terms.
//
// Per term, the score is the sum of the exact-substring bonus, the fuzzy
// contribution when enabled, and the boost of every scoring field whose
// stringified lowercase value contains the term. Term scores sum across all
// terms, then the total is multiplied by the document's static boost. An
// empty term list yields zero.
func (s *Scorer) Score(doc *core.IndexedDocument, terms []string) float64 {
	if len(terms) == 0 {
		return 0
	}

	var total float64
	for _, term := range terms {
		var termScore float64

		if strings.Contains(doc.Content, term) {
			termScore += exactMatchBonus
		}

		if s.fuzzy {
			termScore += s.fuzzyScore(doc.Content, term)
		}

		for _, field := range s.fields {
			value, ok := doc.Fields[field.Name]
			if !ok {
				continue
			}
			text := stringifyField(value)
			if field.Analyzer != core.AnalyzerKeyword {
				text = strings.ToLower(text)
			}
			if strings.Contains(text, term) {
				termScore += field.Boost
			}
		}

		total += termScore
	}

	return total * doc.Boost
}

// fuzzyScore returns the best fuzzy contribution of term against the
// whitespace-delimited words of content. A word contributes when its
// Levenshtein similarity ratio exceeds the threshold; only the maximum
// contribution is kept so fuzzy noise cannot accumulate.
func (s *Scorer) fuzzyScore(content, term string) float64 {
	var best float64
	for _, word := range strings.Fields(content) {
		longest := max(len(word), len(term))
		if longest == 0 {
			continue
		}
		distance := levenshtein(word, term)
		similarity := 1 - float64(distance)/float64(longest)
		if similarity <= s.fuzzyThreshold {
			continue
		}
		if contribution := similarity * s.fuzzyWeight; contribution > best {
			best = contribution
		}
	}
	return best
}

// levenshtein computes the edit distance between a and b using two-row
// dynamic programming, O(len(a)*len(b)) time and O(min) space.
func levenshtein(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
