package scheme

import "strings"

// Bracket pairs and separators accepted by ArrayScheme.
var (
	Brackets   = []string{"[]", "{}", "()", ""}
	Separators = []string{",", ";", "\n"}
)

// ArrayScheme describes how several values are combined into one array.
type ArrayScheme struct {
	// Count is the number of values in each array.
	Count int `koanf:"count" yaml:"count" json:"count" validate:"gte=1"`
	// Brackets is the pair of characters around the array, or empty for none.
	Brackets string `koanf:"brackets" yaml:"brackets" json:"brackets" validate:"brackets"`
	// Separator is placed between two values.
	Separator string `koanf:"separator" yaml:"separator" json:"separator" validate:"separator"`
	// SpaceAfterSeparator adds a space after each separator, except after a newline.
	SpaceAfterSeparator bool `koanf:"space_after_separator" yaml:"space_after_separator" json:"space_after_separator"`
}

// DefaultArrayScheme returns the scheme used when nothing is configured.
func DefaultArrayScheme() ArrayScheme {
	return ArrayScheme{
		Count:               5,
		Brackets:            "[]",
		Separator:           ",",
		SpaceAfterSeparator: true,
	}
}

// Validate reports whether the scheme can be used for generation.
func (s ArrayScheme) Validate() error {
	return check(s)
}

// Join combines values into a single array string.
func (s ArrayScheme) Join(values []string) string {
	sep := s.Separator
	if s.SpaceAfterSeparator && sep != "\n" {
		sep += " "
	}
	joined := strings.Join(values, sep)

	if s.Brackets == "" {
		return joined
	}
	open, close := splitBrackets(s.Brackets)
	return open + joined + close
}

func splitBrackets(b string) (string, string) {
	runes := []rune(b)
	half := len(runes) / 2
	return string(runes[:half]), string(runes[half:])
}
