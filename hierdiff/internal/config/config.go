// Package config handles diff engine tuning from YAML files.
// The zero value plus applyDefaults equals the shipped sensitivity
// constants, so a config file is only needed for re-tuning.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level engine configuration.
type Config struct {
	Match      MatchConfig      `yaml:"match"`
	Text       TextConfig       `yaml:"text"`
	Score      ScoreConfig      `yaml:"score"`
	Attributes AttributesConfig `yaml:"attributes"`
}

// MatchConfig controls the heuristic matcher.
type MatchConfig struct {
	// AcceptThreshold is the minimum candidate score for a heuristic pair.
	AcceptThreshold float64 `yaml:"accept_threshold"`
	// ContentBoost multiplies the accessibility-label similarity before it
	// competes with the visible-text similarity.
	ContentBoost float64 `yaml:"content_boost"`
	// OverlapBonus is added when both rectangles overlap with positive area.
	OverlapBonus float64 `yaml:"overlap_bonus"`
}

// TextConfig controls text-change reporting.
type TextConfig struct {
	// SimilarityThreshold suppresses text_change when the normalized texts
	// are at least this similar (near-identical edits are cosmetic).
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
}

// ScoreConfig controls the change-magnitude score.
type ScoreConfig struct {
	Weights map[string]float64 `yaml:"weights"`
	// DefaultWeight applies to difference types missing from Weights.
	DefaultWeight float64 `yaml:"default_weight"`
}

// AttributesConfig controls which attributes are meaningful.
type AttributesConfig struct {
	// Keep is the flat allow-list; every other attribute is cosmetic and
	// dropped before comparison.
	Keep []string `yaml:"keep"`
}

// defaultKeep is the attribute vocabulary of uiautomator dumps that carries
// identity or state. Styling attributes never appear here.
var defaultKeep = []string{
	"resource-id", "content-desc", "class",
	"checked", "enabled", "clickable", "focusable", "selected",
	"index", "package",
}

// defaultWeights reflect how disruptive each change kind is relative to a
// node appearing or disappearing outright.
var defaultWeights = map[string]float64{
	"added":         1.0,
	"removed":       1.0,
	"attr_change":   0.5,
	"text_change":   0.7,
	"bounds_change": 0.3,
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file and applies defaults to any
// field left unset.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Normalized returns a copy of c with defaults applied to every unset
// field, leaving the receiver untouched. A zero-value Config normalizes to
// exactly Default().
func (c *Config) Normalized() *Config {
	out := *c
	if c.Score.Weights != nil {
		out.Score.Weights = make(map[string]float64, len(c.Score.Weights))
		for k, w := range c.Score.Weights {
			out.Score.Weights[k] = w
		}
	}
	out.Attributes.Keep = append([]string(nil), c.Attributes.Keep...)
	out.applyDefaults()
	return &out
}

func (c *Config) applyDefaults() {
	if c.Match.AcceptThreshold <= 0 {
		c.Match.AcceptThreshold = 0.4
	}
	if c.Match.ContentBoost <= 0 {
		c.Match.ContentBoost = 1.2
	}
	if c.Match.OverlapBonus <= 0 {
		c.Match.OverlapBonus = 0.05
	}
	if c.Text.SimilarityThreshold <= 0 {
		c.Text.SimilarityThreshold = 0.9
	}
	if c.Score.DefaultWeight <= 0 {
		c.Score.DefaultWeight = 0.5
	}
	if c.Score.Weights == nil {
		c.Score.Weights = make(map[string]float64, len(defaultWeights))
	}
	for k, w := range defaultWeights {
		if _, ok := c.Score.Weights[k]; !ok {
			c.Score.Weights[k] = w
		}
	}
	if len(c.Attributes.Keep) == 0 {
		c.Attributes.Keep = append([]string(nil), defaultKeep...)
	}
}

// KeepSet returns the allow-list as a set.
func (c *Config) KeepSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Attributes.Keep))
	for _, k := range c.Attributes.Keep {
		set[k] = struct{}{}
	}
	return set
}
