// Package config loads segmentation settings from a JSON file and merges
// them with command-line flags and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ironsheep/image-segment-mcp/internal/imaging"
)

// LogLevelEnv names the environment variable that overrides LogLevel.
const LogLevelEnv = "IMAGE_SEGMENT_LOG_LEVEL"

// Defaults applied by Default and kept by Load for fields absent from the file.
const (
	DefaultSeed    = 42
	DefaultQuality = 90
)

// Config holds everything one segmentation run needs.
type Config struct {
	// Files
	Input     string `json:"input"`
	Output    string `json:"output"`
	Histogram string `json:"histogram"`

	// Segmentation. Granularity is nil until provided; it has no default.
	Granularity *float64 `json:"granularity,omitempty"`
	MinSize     int      `json:"min_size"`
	Seed        int64    `json:"seed"`

	// Preprocessing and output
	Sigma        float64 `json:"sigma"`
	MaxDimension int     `json:"max_dimension"`
	Quality      int     `json:"quality"`

	LogLevel string `json:"log_level"`
}

// Default returns a Config with the default seed and quality and nothing
// else set.
func Default() Config {
	return Config{
		Seed:    DefaultSeed,
		Quality: DefaultQuality,
	}
}

// Load reads a JSON config file. Fields not set in the file keep their
// Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings. Strings
// override when non-empty; pointers override when non-nil, so an explicit
// zero on the command line wins over the file.
type Flags struct {
	Input     string
	Output    string
	Histogram string

	Granularity  *float64
	MinSize      *int
	Seed         *int64
	Sigma        *float64
	MaxDimension *int
	Quality      *int

	Debug bool
}

// Resolve applies flags over c, then the LogLevelEnv environment variable.
// -debug on the command line beats both.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Input != "" {
		c.Input = flags.Input
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Histogram != "" {
		c.Histogram = flags.Histogram
	}
	if flags.Granularity != nil {
		k := *flags.Granularity
		c.Granularity = &k
	}
	if flags.MinSize != nil {
		c.MinSize = *flags.MinSize
	}
	if flags.Seed != nil {
		c.Seed = *flags.Seed
	}
	if flags.Sigma != nil {
		c.Sigma = *flags.Sigma
	}
	if flags.MaxDimension != nil {
		c.MaxDimension = *flags.MaxDimension
	}
	if flags.Quality != nil {
		c.Quality = *flags.Quality
	}

	if lvl := os.Getenv(LogLevelEnv); lvl != "" {
		c.LogLevel = lvl
	}
	if flags.Debug {
		c.LogLevel = "debug"
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// SetGranularity records k as the granularity.
func (c *Config) SetGranularity(k float64) {
	c.Granularity = &k
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Missing lists the required settings that are still empty, by their JSON
// names, in the order input, output, granularity.
func (c Config) Missing() []string {
	var missing []string
	if c.Input == "" {
		missing = append(missing, "input")
	}
	if c.Output == "" {
		missing = append(missing, "output")
	}
	if c.Granularity == nil {
		missing = append(missing, "granularity")
	}
	return missing
}

// Validate reports every problem with c, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if m := c.Missing(); len(m) > 0 {
		errs = append(errs, fmt.Errorf("config: missing %s", strings.Join(m, ", ")))
	}
	if c.Granularity != nil {
		if k := *c.Granularity; math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
			errs = append(errs, fmt.Errorf("config: invalid granularity %g: must be finite and non-negative", k))
		}
	}
	if c.MinSize < 0 {
		errs = append(errs, fmt.Errorf("config: invalid min_size %d: must be non-negative", c.MinSize))
	}
	if !imaging.ValidSigma(c.Sigma) {
		errs = append(errs, fmt.Errorf("config: invalid sigma %g: must be between 0 and %d", c.Sigma, imaging.MaxSigma))
	}
	if c.MaxDimension < 0 {
		errs = append(errs, fmt.Errorf("config: invalid max_dimension %d: must be non-negative", c.MaxDimension))
	}
	if c.Quality < 1 || c.Quality > 100 {
		errs = append(errs, fmt.Errorf("config: invalid quality %d: must be 1-100", c.Quality))
	}
	switch c.LogLevel {
	case "", "info", "debug":
	default:
		errs = append(errs, fmt.Errorf("config: invalid log_level %q: use info or debug", c.LogLevel))
	}
	return errors.Join(errs...)
}
