package sweep

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/pramcost/search"
)

// Config describes an (n, p) grid to evaluate.
type Config struct {
	// Sizes are the problem sizes n.
	Sizes []int `yaml:"sizes"`
	// Processors are the processor counts p.
	Processors []int `yaml:"processors"`
	// TargetPresent selects a target drawn from the input instead of an
	// absent one.
	TargetPresent bool `yaml:"target_present"`
	// Seed seeds input generation. Point i uses Seed+i, so results do not
	// depend on scheduling.
	Seed int64 `yaml:"seed"`
	// Workers bounds concurrent evaluations.
	Workers int64 `yaml:"workers"`
	// EvaluationsPerSec throttles evaluation starts; 0 means unlimited.
	EvaluationsPerSec float64 `yaml:"evaluations_per_sec"`
	// ConflictRule is the CRCW write-conflict rule.
	ConflictRule string `yaml:"conflict_rule"`
	// ProgressInterval is the minimum time between progress log lines.
	ProgressInterval time.Duration `yaml:"progress_interval"`
}

// DefaultConfig returns a sweep over a few sizes and power-of-two
// processor counts with a present target.
func DefaultConfig() *Config {
	return &Config{
		Sizes:            []int{8, 64, 256, 1024},
		Processors:       PowersOfTwo(1024),
		TargetPresent:    true,
		Seed:             1,
		Workers:          int64(runtime.NumCPU()),
		ConflictRule:     search.Priority.String(),
		ProgressInterval: time.Second,
	}
}

// LoadConfig reads a YAML sweep file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sweep config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sweep config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sweep config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes must not be empty")
	}
	if len(c.Processors) == 0 {
		return fmt.Errorf("processors must not be empty")
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("size must be >= 1, got %d", n)
		}
	}
	for _, p := range c.Processors {
		if p < 1 {
			return fmt.Errorf("processor count must be >= 1, got %d", p)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.EvaluationsPerSec < 0 {
		return fmt.Errorf("evaluations_per_sec must be >= 0, got %g", c.EvaluationsPerSec)
	}
	if _, err := search.ParseConflictRule(c.ConflictRule); err != nil {
		return err
	}
	return nil
}

// Points returns the grid in row-major order: every p for the first n, then
// every p for the second n, and so on.
func (c *Config) Points() [][2]int {
	out := make([][2]int, 0, len(c.Sizes)*len(c.Processors))
	for _, n := range c.Sizes {
		for _, p := range c.Processors {
			out = append(out, [2]int{n, p})
		}
	}
	return out
}

// PowersOfTwo returns 1, 2, 4, ... up to and including limit.
func PowersOfTwo(limit int) []int {
	var out []int
	for p := 1; p <= limit; p *= 2 {
		out = append(out, p)
	}
	return out
}
