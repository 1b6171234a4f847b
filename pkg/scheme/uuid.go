package scheme

// UUIDScheme describes random UUIDs.
type UUIDScheme struct {
	// Version is the UUID version: 1 (time based), 4 (random) or 7 (time ordered).
	Version        int                `koanf:"version" yaml:"version" json:"version" validate:"oneof=1 4 7"`
	Enclosure      string             `koanf:"enclosure" yaml:"enclosure" json:"enclosure"`
	Capitalization CapitalizationMode `koanf:"capitalization" yaml:"capitalization" json:"capitalization" validate:"capitalization"`
	AddDashes      bool               `koanf:"add_dashes" yaml:"add_dashes" json:"add_dashes"`
}

// DefaultUUIDScheme returns the scheme used when nothing is configured.
func DefaultUUIDScheme() UUIDScheme {
	return UUIDScheme{
		Version:        4,
		Enclosure:      `"`,
		Capitalization: CapitalizationLower,
		AddDashes:      true,
	}
}

// Validate reports whether the scheme can be used for generation.
func (s UUIDScheme) Validate() error {
	return check(s)
}
