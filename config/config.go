// Package config loads game configuration from YAML. Every field has a
// sensible default; an absent file is not an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the game version reported by --version.
const Version = "1.0.0"

// Difficulty multipliers scale resource drain and event pressure.
type Difficulty struct {
	ResourceConsumption float64 `yaml:"resource_consumption"`
	StartingResources   float64 `yaml:"starting_resources"`
	EventChance         float64 `yaml:"event_chance"`
	PatrolIntensity     float64 `yaml:"patrol_intensity"`
}

// DifficultyModifiers maps difficulty names to their multipliers.
var DifficultyModifiers = map[string]Difficulty{
	"easy":   {ResourceConsumption: 0.7, StartingResources: 1.3, EventChance: 0.7, PatrolIntensity: 0.7},
	"normal": {ResourceConsumption: 1.0, StartingResources: 1.0, EventChance: 1.0, PatrolIntensity: 1.0},
	"hard":   {ResourceConsumption: 1.3, StartingResources: 0.7, EventChance: 1.3, PatrolIntensity: 1.3},
}

// Matcher configures the optional embeddings endpoint.
type Matcher struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Model   string `yaml:"model"`
}

// Config is the full game configuration.
type Config struct {
	MaxTurns   int     `yaml:"max_turns"`
	Difficulty string  `yaml:"difficulty"`
	Seed       int64   `yaml:"seed"` // 0 = time-based
	ContentDir string  `yaml:"content_dir"`
	Matcher    Matcher `yaml:"matcher"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxTurns:   30,
		Difficulty: "normal",
		Matcher: Matcher{
			Enabled: false,
			URL:     "http://localhost:11434/api/embeddings",
			Model:   "mxbai-embed-large",
		},
	}
}

// Load reads a YAML config file, filling unset fields from Default.
// A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	}
	if _, ok := DifficultyModifiers[c.Difficulty]; !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, or hard)", c.Difficulty)
	}
	return nil
}

// Modifiers returns the difficulty multipliers for the configured level.
func (c Config) Modifiers() Difficulty {
	return DifficultyModifiers[c.Difficulty]
}
