package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/freshpos/internal/core/checkout"
	"github.com/example/freshpos/internal/core/resolver"
)

// Default classifier input edge length in pixels. One deployed model
// takes 224, another 64; the value is configuration, not semantics.
const DefaultInputSize = 224

// Config represents the flat freshpos configuration
type Config struct {
	Version           string  `json:"version"`
	ScoreGap          float64 `json:"score_gap"`                    // top-1 lead required for auto-accept
	MinConfidence     float64 `json:"min_confidence"`               // absolute top-1 score required for auto-accept
	InputSize         int     `json:"input_size"`                   // classifier input edge, pixels
	ClassifierCommand string  `json:"classifier_command,omitempty"` // external scorer executable
	PendingScanPolicy string  `json:"pending_scan_policy"`          // drop, queue, or supersede
	LabelsPath        string  `json:"labels_path,omitempty"`        // catalog file, defaults to <dir>/.freshpos/labels.txt
}

// Default returns the deployed configuration values.
func Default() *Config {
	return &Config{
		Version:           "1",
		ScoreGap:          resolver.DefaultScoreGap,
		MinConfidence:     resolver.DefaultMinConfidence,
		InputSize:         DefaultInputSize,
		PendingScanPolicy: string(checkout.PolicyDrop),
	}
}

// Thresholds converts the configured decision parameters.
func (c *Config) Thresholds() resolver.Thresholds {
	return resolver.Thresholds{ScoreGap: c.ScoreGap, MinConfidence: c.MinConfidence}
}

// Policy returns the configured pending-scan policy, falling back to
// drop for unknown values.
func (c *Config) Policy() checkout.PendingScanPolicy {
	if checkout.ValidPendingScanPolicy(c.PendingScanPolicy) {
		return checkout.PendingScanPolicy(c.PendingScanPolicy)
	}
	return checkout.PolicyDrop
}

// LoadConfig reads .freshpos/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".freshpos", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.InputSize <= 0 {
		cfg.InputSize = DefaultInputSize
	}
	if cfg.ScoreGap <= 0 {
		cfg.ScoreGap = resolver.DefaultScoreGap
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = resolver.DefaultMinConfidence
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".freshpos")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .freshpos dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
