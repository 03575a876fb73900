// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// DefaultStopWords is the fixed stop-word list applied by the text analyzer.
var DefaultStopWords = []string{
	"the", "a", "an", "be", "is", "are",
	"was", "to", "of", "and", "in", "that",
	"have", "it", "for", "not", "on", "with",
	"as", "you", "do", "at", "this", "but",
	"by", "from",
}

// Default fuzzy-matching parameters. Near-misses score at half the strength
// of an exact substring hit, and only above the similarity threshold.
const (
	DefaultFuzzyThreshold = 0.6
	DefaultFuzzyWeight    = 0.5
)

// IndexConfig holds the analysis and scoring configuration for one provider's
// index. It is supplied once at provider construction and is immutable for the
// provider's lifetime.
type IndexConfig struct {
	// Fields lists the scoring fields and their weight multipliers.
	Fields []ScoringField

	// StopWords are dropped during tokenization.
	StopWords []string

	// CaseSensitive disables case folding during normalization.
	CaseSensitive bool

	// EnableStemming is reserved. No stemming is applied beyond stop-word
	// removal; the flag is carried so adapters can declare intent.
	EnableStemming bool

	// Fuzzy enables edit-distance term matching.
	Fuzzy bool

	// FuzzyThreshold is the minimum similarity ratio for a fuzzy hit.
	// Default: DefaultFuzzyThreshold.
	FuzzyThreshold float64

	// FuzzyWeight scales fuzzy contributions relative to exact hits.
	// Default: DefaultFuzzyWeight.
	FuzzyWeight float64
}

// ConfigOption is a functional option for configuring an IndexConfig.
type ConfigOption func(*IndexConfig)

// WithFields sets the scoring field configuration.
func WithFields(fields ...ScoringField) ConfigOption {
	return func(c *IndexConfig) {
		c.Fields = fields
	}
}

// WithStopWords replaces the stop-word list.
func WithStopWords(words ...string) ConfigOption {
	return func(c *IndexConfig) {
		c.StopWords = words
	}
}

// WithCaseSensitive toggles case-sensitive matching.
func WithCaseSensitive(sensitive bool) ConfigOption {
	return func(c *IndexConfig) {
		c.CaseSensitive = sensitive
	}
}

// WithFuzzy toggles fuzzy matching.
func WithFuzzy(enabled bool) ConfigOption {
	return func(c *IndexConfig) {
		c.Fuzzy = enabled
	}
}

// WithFuzzyThreshold sets the minimum similarity ratio for a fuzzy hit.
func WithFuzzyThreshold(threshold float64) ConfigOption {
	return func(c *IndexConfig) {
		c.FuzzyThreshold = threshold
	}
}

// WithFuzzyWeight sets the fuzzy contribution weight.
func WithFuzzyWeight(weight float64) ConfigOption {
	return func(c *IndexConfig) {
		c.FuzzyWeight = weight
	}
}

// DefaultIndexConfig returns an IndexConfig with the default stop-word list
// and fuzzy matching enabled at the default threshold and weight.
func DefaultIndexConfig() IndexConfig {
	return IndexConfig{
		StopWords:      DefaultStopWords,
		Fuzzy:          true,
		FuzzyThreshold: DefaultFuzzyThreshold,
		FuzzyWeight:    DefaultFuzzyWeight,
	}
}

// NewIndexConfig creates an IndexConfig with default values and applies the
// provided options.
func NewIndexConfig(opts ...ConfigOption) IndexConfig {
	cfg := DefaultIndexConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *IndexConfig) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold >= 1 {
		return errors.New("index config: FuzzyThreshold must be in [0, 1)")
	}
	if c.FuzzyWeight < 0 || c.FuzzyWeight > 1 {
		return errors.New("index config: FuzzyWeight must be in [0, 1]")
	}
	for _, field := range c.Fields {
		if field.Name == "" {
			return errors.New("index config: scoring field name cannot be empty")
		}
		if field.Boost < 0 {
			return errors.New("index config: scoring field boost cannot be negative")
		}
	}
	return nil
}
