package config

import (
	"fmt"

	"github.com/leapstack-labs/randomness/pkg/scheme"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Output:    DefaultOutput,
		Decimal:   scheme.DefaultDecimalScheme(),
		Integer:   scheme.DefaultIntegerScheme(),
		String:    scheme.DefaultStringScheme(),
		UUID:      scheme.DefaultUUIDScheme(),
		Word:      scheme.DefaultWordScheme(),
		Array:     scheme.DefaultArrayScheme(),
	}
}

// DefaultMap returns Default as a nested map keyed like the config file, for
// use as the lowest configuration layer.
func DefaultMap() (map[string]any, error) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("failed to encode defaults: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode defaults: %w", err)
	}
	return m, nil
}
