package scheme

import "github.com/leapstack-labs/randomness/pkg/numfmt"

// DecimalScheme describes random decimal numbers.
type DecimalScheme struct {
	MinValue float64 `koanf:"min_value" yaml:"min_value" json:"min_value"`
	MaxValue float64 `koanf:"max_value" yaml:"max_value" json:"max_value"`
	// DecimalCount is bounded since float64 carries about 17 significant digits.
	DecimalCount       int    `koanf:"decimal_count" yaml:"decimal_count" json:"decimal_count" validate:"gte=0,lte=100"`
	ShowTrailingZeroes bool   `koanf:"show_trailing_zeroes" yaml:"show_trailing_zeroes" json:"show_trailing_zeroes"`
	GroupingSeparator  string `koanf:"grouping_separator" yaml:"grouping_separator" json:"grouping_separator" validate:"max=1"`
	DecimalSeparator   string `koanf:"decimal_separator" yaml:"decimal_separator" json:"decimal_separator" validate:"max=1"`
	Prefix             string `koanf:"prefix" yaml:"prefix" json:"prefix"`
	Suffix             string `koanf:"suffix" yaml:"suffix" json:"suffix"`
}

// DefaultDecimalScheme returns the scheme used when nothing is configured.
func DefaultDecimalScheme() DecimalScheme {
	return DecimalScheme{
		MinValue:           0.0,
		MaxValue:           1000.0,
		DecimalCount:       2,
		ShowTrailingZeroes: true,
		DecimalSeparator:   ".",
	}
}

// Validate reports whether the scheme can be used for generation.
func (s DecimalScheme) Validate() error {
	if s.MinValue > s.MaxValue {
		return invalid("Minimum value is larger than maximum value.")
	}
	return check(s)
}

// FormatOptions returns the formatting part of the scheme.
func (s DecimalScheme) FormatOptions() numfmt.DecimalOptions {
	return numfmt.DecimalOptions{
		DecimalCount:       s.DecimalCount,
		ShowTrailingZeroes: s.ShowTrailingZeroes,
		GroupingSeparator:  s.GroupingSeparator,
		DecimalSeparator:   s.DecimalSeparator,
	}
}

// Format returns value as it is emitted by a decimal generator.
func (s DecimalScheme) Format(value float64) string {
	return s.Prefix + numfmt.FormatDecimal(value, s.FormatOptions()) + s.Suffix
}
