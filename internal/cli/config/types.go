// Package config provides configuration loading for the randomness CLI.
//
// The configuration model itself lives in internal/config and is re-exported
// here via a type alias so that commands only need this package.
package config

import (
	sharedcfg "github.com/leapstack-labs/randomness/internal/config"
)

// Config is an alias for the shared configuration model.
type Config = sharedcfg.Config

// Default configuration values - uses shared defaults from internal/config.
const (
	DefaultLogLevel  = sharedcfg.DefaultLogLevel
	DefaultLogFormat = sharedcfg.DefaultLogFormat
	DefaultOutput    = sharedcfg.DefaultOutput
)

// EnvPrefix is the prefix of environment variables read into the config.
// Nested keys are separated by a double underscore, e.g.
// RANDOMNESS_INTEGER__MAX_VALUE sets integer.max_value.
const EnvPrefix = "RANDOMNESS_"

// KeyAnnotation is the flag annotation naming the config key a flag sets.
// Flags without it map to their name with dashes replaced by underscores.
const KeyAnnotation = "randomness/config-key"
