package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "randomness.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "randomness.yml"

// LoadFromDir loads the config file in dir on top of the defaults.
// Returns the defaults if dir has no config file.
func LoadFromDir(dir string) (*Config, error) {
	defaults, err := DefaultMap()
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	if configPath := FindConfigFile(dir); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FindProjectRoot walks up from the given directory to find a directory
// containing a config file. Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
