package scheme

import "github.com/leapstack-labs/randomness/pkg/numfmt"

// IntegerScheme describes random integers.
type IntegerScheme struct {
	MinValue          int64  `koanf:"min_value" yaml:"min_value" json:"min_value"`
	MaxValue          int64  `koanf:"max_value" yaml:"max_value" json:"max_value"`
	Base              int    `koanf:"base" yaml:"base" json:"base" validate:"gte=2,lte=36"`
	GroupingSeparator string `koanf:"grouping_separator" yaml:"grouping_separator" json:"grouping_separator" validate:"max=1"`
	Prefix            string `koanf:"prefix" yaml:"prefix" json:"prefix"`
	Suffix            string `koanf:"suffix" yaml:"suffix" json:"suffix"`
}

// DefaultIntegerScheme returns the scheme used when nothing is configured.
func DefaultIntegerScheme() IntegerScheme {
	return IntegerScheme{
		MinValue: 0,
		MaxValue: 1000,
		Base:     numfmt.DecimalBase,
	}
}

// Validate reports whether the scheme can be used for generation.
func (s IntegerScheme) Validate() error {
	if s.MinValue > s.MaxValue {
		return invalid("Minimum value is larger than maximum value.")
	}
	return check(s)
}

// Format returns value as it is emitted by an integer generator.
func (s IntegerScheme) Format(value int64) (string, error) {
	digits, err := numfmt.FormatInteger(value, s.Base, s.GroupingSeparator)
	if err != nil {
		return "", err
	}
	return s.Prefix + digits + s.Suffix, nil
}
