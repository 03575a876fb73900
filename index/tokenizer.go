package index

import (
	"regexp"
	"strings"

	"github.com/poiesic/searchkit/core"
)

var nonWord = regexp.MustCompile(`\W+`)

// Tokenizer turns free text into a normalized sequence of terms. It has no
// hidden state: identical input always yields identical output.
type Tokenizer struct {
	stopWords     map[string]struct{}
	caseSensitive bool
}

// NewTokenizer creates a tokenizer from the provider's index configuration.
func NewTokenizer(cfg core.IndexConfig) *Tokenizer {
	stopWords := make(map[string]struct{}, len(cfg.StopWords))
	for _, word := range cfg.StopWords {
		if !cfg.CaseSensitive {
			word = strings.ToLower(word)
		}
		stopWords[word] = struct{}{}
	}
	return &Tokenizer{
		stopWords:     stopWords,
		caseSensitive: cfg.CaseSensitive,
	}
}

// Normalize lowercases text unless the index is case-sensitive.
func (t *Tokenizer) Normalize(text string) string {
	if t.caseSensitive {
		return text
	}
	return strings.ToLower(text)
}

// Tokenize splits text on whitespace, strips non-word characters from each
// token, and drops empty tokens and stop words. A text consisting solely of
// stop words or punctuation tokenizes to an empty list.
func (t *Tokenizer) Tokenize(text string) []string {
	words := strings.Fields(t.Normalize(text))
	terms := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := nonWord.ReplaceAllString(word, "")
		if cleaned == "" {
			continue
		}
		if _, stop := t.stopWords[cleaned]; stop {
			continue
		}
		terms = append(terms, cleaned)
	}

	return terms
}
