package main

import (
	"fmt"
	"os"

	"github.com/poiesic/searchkit/core"
	"gopkg.in/yaml.v3"
)

// fileConfig holds per-provider index setting overrides loaded from YAML.
//
// Example:
//
//	providers:
//	  tasks:
//	    fuzzy: true
//	    fuzzy_threshold: 0.7
//	    stop_words: [the, a, an]
type fileConfig struct {
	Providers map[string]providerConfig `yaml:"providers"`
}

type providerConfig struct {
	StopWords      []string `yaml:"stop_words"`
	CaseSensitive  *bool    `yaml:"case_sensitive"`
	Fuzzy          *bool    `yaml:"fuzzy"`
	FuzzyThreshold *float64 `yaml:"fuzzy_threshold"`
	FuzzyWeight    *float64 `yaml:"fuzzy_weight"`
}

// loadConfig reads the YAML config file. An empty path yields an empty config.
func loadConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// apply overlays the overrides for one provider on top of its default index
// configuration. Unset values keep the defaults.
func (c *fileConfig) apply(name string, base core.IndexConfig) core.IndexConfig {
	override, ok := c.Providers[name]
	if !ok {
		return base
	}
	if override.StopWords != nil {
		base.StopWords = override.StopWords
	}
	if override.CaseSensitive != nil {
		base.CaseSensitive = *override.CaseSensitive
	}
	if override.Fuzzy != nil {
		base.Fuzzy = *override.Fuzzy
	}
	if override.FuzzyThreshold != nil {
		base.FuzzyThreshold = *override.FuzzyThreshold
	}
	if override.FuzzyWeight != nil {
		base.FuzzyWeight = *override.FuzzyWeight
	}
	return base
}
