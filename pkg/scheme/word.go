package scheme

import (
	"github.com/leapstack-labs/randomness/pkg/dictionary"
)

// WordScheme describes random words taken from dictionaries.
//
// Dictionaries are referred to by bundled resource name or user file path.
// Only the ones listed in ActiveBundled and ActiveUser are used.
type WordScheme struct {
	MinLength           int                `koanf:"min_length" yaml:"min_length" json:"min_length" validate:"gte=1"`
	MaxLength           int                `koanf:"max_length" yaml:"max_length" json:"max_length" validate:"gte=1"`
	Enclosure           string             `koanf:"enclosure" yaml:"enclosure" json:"enclosure"`
	Capitalization      CapitalizationMode `koanf:"capitalization" yaml:"capitalization" json:"capitalization" validate:"capitalization"`
	BundledDictionaries []string           `koanf:"bundled_dictionaries" yaml:"bundled_dictionaries" json:"bundled_dictionaries"`
	UserDictionaries    []string           `koanf:"user_dictionaries" yaml:"user_dictionaries,omitempty" json:"user_dictionaries"`
	ActiveBundled       []string           `koanf:"active_bundled" yaml:"active_bundled" json:"active_bundled"`
	ActiveUser          []string           `koanf:"active_user" yaml:"active_user,omitempty" json:"active_user"`
}

// DefaultWordScheme returns the scheme used when nothing is configured.
func DefaultWordScheme() WordScheme {
	return WordScheme{
		MinLength:           3,
		MaxLength:           8,
		Enclosure:           `"`,
		Capitalization:      CapitalizationRetain,
		BundledDictionaries: []string{dictionary.DefaultBundledDictionary},
		ActiveBundled:       []string{dictionary.DefaultBundledDictionary},
	}
}

// Validate reports whether the scheme can be used for generation. The
// dictionaries themselves are checked with Entries and ValidateSelection.
func (s WordScheme) Validate() error {
	if s.MinLength > s.MaxLength {
		return invalid("Minimum length is larger than maximum length.")
	}
	return check(s)
}

// Entries resolves the dictionaries of the scheme through c, bundled ones
// first. Active dictionaries that are not listed are appended.
func (s WordScheme) Entries(c *dictionary.Cache) []dictionary.Entry {
	var entries []dictionary.Entry
	add := func(names, active []string, get func(string) *dictionary.Dictionary) {
		isActive := make(map[string]bool, len(active))
		for _, name := range active {
			isActive[name] = true
		}
		listed := make(map[string]bool, len(names))
		for _, name := range names {
			listed[name] = true
			entries = append(entries, dictionary.Entry{Dictionary: get(name), Active: isActive[name]})
		}
		for _, name := range active {
			if !listed[name] {
				listed[name] = true
				entries = append(entries, dictionary.Entry{Dictionary: get(name), Active: true})
			}
		}
	}

	add(s.BundledDictionaries, s.ActiveBundled, c.Bundled)
	add(s.UserDictionaries, s.ActiveUser, c.User)
	return entries
}

// ActiveDictionaries returns the active dictionaries of the scheme.
func (s WordScheme) ActiveDictionaries(c *dictionary.Cache) []*dictionary.Dictionary {
	return dictionary.Active(s.Entries(c))
}
