// Package config provides the configuration model shared by the CLI and any
// other tool that needs the user's generation settings.
package config

import (
	"github.com/leapstack-labs/randomness/pkg/scheme"
)

// Config holds the user's settings: one scheme per data kind plus logging
// and output preferences.
type Config struct {
	LogLevel  string `koanf:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat string `koanf:"log_format" yaml:"log_format" json:"log_format"`
	Output    string `koanf:"output" yaml:"output" json:"output"`
	Verbose   bool   `koanf:"verbose" yaml:"verbose" json:"verbose"`

	Decimal scheme.DecimalScheme `koanf:"decimal" yaml:"decimal" json:"decimal"`
	Integer scheme.IntegerScheme `koanf:"integer" yaml:"integer" json:"integer"`
	String  scheme.StringScheme  `koanf:"string" yaml:"string" json:"string"`
	UUID    scheme.UUIDScheme    `koanf:"uuid" yaml:"uuid" json:"uuid"`
	Word    scheme.WordScheme    `koanf:"word" yaml:"word" json:"word"`
	Array   scheme.ArrayScheme   `koanf:"array" yaml:"array" json:"array"`
}

// Schemes returns every scheme of the config keyed by data kind.
func (c *Config) Schemes() map[string]scheme.Scheme {
	return map[string]scheme.Scheme{
		"decimal": c.Decimal,
		"integer": c.Integer,
		"string":  c.String,
		"uuid":    c.UUID,
		"word":    c.Word,
		"array":   c.Array,
	}
}
