package scheme

import "github.com/leapstack-labs/randomness/pkg/symbolset"

// StringScheme describes random strings.
type StringScheme struct {
	MinLength               int                   `koanf:"min_length" yaml:"min_length" json:"min_length" validate:"gte=1"`
	MaxLength               int                   `koanf:"max_length" yaml:"max_length" json:"max_length" validate:"gte=1"`
	Enclosure               string                `koanf:"enclosure" yaml:"enclosure" json:"enclosure"`
	Capitalization          CapitalizationMode    `koanf:"capitalization" yaml:"capitalization" json:"capitalization" validate:"capitalization"`
	SymbolSets              []symbolset.SymbolSet `koanf:"symbol_sets" yaml:"symbol_sets" json:"symbol_sets" validate:"min=1"`
	ExcludeLookAlikeSymbols bool                  `koanf:"exclude_look_alike_symbols" yaml:"exclude_look_alike_symbols" json:"exclude_look_alike_symbols"`
}

// DefaultStringScheme returns the scheme used when nothing is configured.
func DefaultStringScheme() StringScheme {
	return StringScheme{
		MinLength:      3,
		MaxLength:      8,
		Enclosure:      `"`,
		Capitalization: CapitalizationRandom,
		SymbolSets:     []symbolset.SymbolSet{symbolset.Alphabet, symbolset.Digits},
	}
}

// Validate reports whether the scheme can be used for generation.
func (s StringScheme) Validate() error {
	if s.MinLength > s.MaxLength {
		return invalid("Minimum length is larger than maximum length.")
	}
	if err := check(s); err != nil {
		return err
	}
	if s.Alphabet() == "" {
		return invalid("Select at least one symbol.")
	}
	return nil
}

// Alphabet returns the distinct symbols strings are drawn from.
func (s StringScheme) Alphabet() string {
	alphabet := symbolset.Merge(s.SymbolSets)
	if s.ExcludeLookAlikeSymbols {
		alphabet = symbolset.ExcludeLookAlikes(alphabet)
	}
	return alphabet
}
