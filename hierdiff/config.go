package hierdiff

import (
	"github.com/hazyhaar/uidiff/hierdiff/internal/config"
)

// Config is the top-level engine configuration. Re-exported from internal.
type Config = config.Config

// MatchConfig controls the heuristic matcher.
type MatchConfig = config.MatchConfig

// TextConfig controls text-change reporting.
type TextConfig = config.TextConfig

// ScoreConfig controls the change-magnitude score.
type ScoreConfig = config.ScoreConfig

// AttributesConfig controls the meaningful-attribute allow-list.
type AttributesConfig = config.AttributesConfig

// DefaultConfig returns the shipped sensitivity constants.
func DefaultConfig() *Config {
	return config.Default()
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	return config.LoadFile(path)
}
