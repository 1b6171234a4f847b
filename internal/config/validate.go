package config

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the output mode and every scheme. Unknown log settings are
// not rejected; the logger falls back to its defaults instead.
func (c *Config) Validate() error {
	settings := []struct {
		name  string
		value string
		tag   string
	}{
		{"output", c.Output, "oneof=auto text markdown json"},
	}
	for _, s := range settings {
		if err := validate.Var(s.value, s.tag); err != nil {
			return fmt.Errorf("invalid %s %q: must be one of %s", s.name, s.value, s.tag[len("oneof="):])
		}
	}

	schemes := c.Schemes()
	kinds := make([]string, 0, len(schemes))
	for kind := range schemes {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		if err := schemes[kind].Validate(); err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
	}
	return nil
}
