package scheme

import (
	"testing"

	"github.com/leapstack-labs/randomness/pkg/dictionary"
	"github.com/leapstack-labs/randomness/pkg/symbolset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	tests := []struct {
		name   string
		scheme Scheme
	}{
		{"array", DefaultArrayScheme()},
		{"decimal", DefaultDecimalScheme()},
		{"integer", DefaultIntegerScheme()},
		{"string", DefaultStringScheme()},
		{"uuid", DefaultUUIDScheme()},
		{"word", DefaultWordScheme()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.scheme.Validate())
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	decimal := func(f func(*DecimalScheme)) Scheme {
		s := DefaultDecimalScheme()
		f(&s)
		return s
	}
	integer := func(f func(*IntegerScheme)) Scheme {
		s := DefaultIntegerScheme()
		f(&s)
		return s
	}
	str := func(f func(*StringScheme)) Scheme {
		s := DefaultStringScheme()
		f(&s)
		return s
	}
	array := func(f func(*ArrayScheme)) Scheme {
		s := DefaultArrayScheme()
		f(&s)
		return s
	}

	tests := []struct {
		name    string
		scheme  Scheme
		wantMsg string
	}{
		{
			name:    "decimal min above max",
			scheme:  decimal(func(s *DecimalScheme) { s.MinValue, s.MaxValue = 5, 4.99 }),
			wantMsg: "Minimum value is larger than maximum value.",
		},
		{
			name:    "decimal negative count",
			scheme:  decimal(func(s *DecimalScheme) { s.DecimalCount = -1 }),
			wantMsg: "DecimalCount must be at least 0",
		},
		{
			name:    "decimal count above limit",
			scheme:  decimal(func(s *DecimalScheme) { s.DecimalCount = 1_000_000_000 }),
			wantMsg: "DecimalCount must be at most 100",
		},
		{
			name:    "decimal long separator",
			scheme:  decimal(func(s *DecimalScheme) { s.GroupingSeparator = ".." }),
			wantMsg: "GroupingSeparator must be at most 1 characters long",
		},
		{
			name:    "integer min above max",
			scheme:  integer(func(s *IntegerScheme) { s.MinValue, s.MaxValue = 10, -10 }),
			wantMsg: "Minimum value is larger than maximum value.",
		},
		{
			name:    "integer base too low",
			scheme:  integer(func(s *IntegerScheme) { s.Base = 1 }),
			wantMsg: "Base must be at least 2",
		},
		{
			name:    "integer base too high",
			scheme:  integer(func(s *IntegerScheme) { s.Base = 37 }),
			wantMsg: "Base must be at most 36",
		},
		{
			name:    "string min above max",
			scheme:  str(func(s *StringScheme) { s.MinLength, s.MaxLength = 9, 8 }),
			wantMsg: "Minimum length is larger than maximum length.",
		},
		{
			name:    "string no symbol sets",
			scheme:  str(func(s *StringScheme) { s.SymbolSets = nil }),
			wantMsg: "SymbolSets must contain at least 1 entries",
		},
		{
			name: "string only look-alikes",
			scheme: str(func(s *StringScheme) {
				s.SymbolSets = []symbolset.SymbolSet{{Name: "confusing", Symbols: "0O1l"}}
				s.ExcludeLookAlikeSymbols = true
			}),
			wantMsg: "Select at least one symbol.",
		},
		{
			name:    "string unknown capitalization",
			scheme:  str(func(s *StringScheme) { s.Capitalization = "shouting" }),
			wantMsg: `Capitalization has unsupported value "shouting"`,
		},
		{
			name:    "uuid version",
			scheme:  UUIDScheme{Version: 3, Capitalization: CapitalizationLower},
			wantMsg: "Version must be one of 1, 4, 7",
		},
		{
			name:    "word min above max",
			scheme:  WordScheme{MinLength: 4, MaxLength: 3, Capitalization: CapitalizationRetain},
			wantMsg: "Minimum length is larger than maximum length.",
		},
		{
			name:    "array count",
			scheme:  array(func(s *ArrayScheme) { s.Count = 0 }),
			wantMsg: "Count must be at least 1",
		},
		{
			name:    "array brackets",
			scheme:  array(func(s *ArrayScheme) { s.Brackets = "<>" }),
			wantMsg: `Brackets has unsupported value "<>"`,
		},
		{
			name:    "array separator",
			scheme:  array(func(s *ArrayScheme) { s.Separator = "|" }),
			wantMsg: `Separator has unsupported value "|"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scheme.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScheme)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecimalScheme_MinEqualsMax(t *testing.T) {
	s := DefaultDecimalScheme()
	s.MinValue, s.MaxValue = 7.5, 7.5
	assert.NoError(t, s.Validate())
}

func TestDecimalScheme_Format(t *testing.T) {
	s := DecimalScheme{
		DecimalCount:       2,
		ShowTrailingZeroes: true,
		GroupingSeparator:  ",",
		DecimalSeparator:   ".",
		Prefix:             "$",
		Suffix:             " USD",
	}
	assert.Equal(t, "$1,234.50 USD", s.Format(1234.5))
}

func TestIntegerScheme_Format(t *testing.T) {
	tests := []struct {
		name   string
		scheme IntegerScheme
		value  int64
		want   string
	}{
		{"grouped base 10", IntegerScheme{Base: 10, GroupingSeparator: "."}, 48345, "48.345"},
		{"base 11 is not grouped", IntegerScheme{Base: 11, GroupingSeparator: "."}, 48345, "33360"},
		{"hex with prefix", IntegerScheme{Base: 16, Prefix: "0x"}, 255, "0xff"},
		{"suffix", IntegerScheme{Base: 10, Suffix: "px"}, 12, "12px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.scheme.Format(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := IntegerScheme{Base: 40}.Format(1)
	assert.Error(t, err)
}

func TestArrayScheme_Join(t *testing.T) {
	values := []string{"17", "17", "17"}

	tests := []struct {
		name   string
		scheme ArrayScheme
		want   string
	}{
		{"default", ArrayScheme{Count: 3, Brackets: "[]", Separator: ",", SpaceAfterSeparator: true}, "[17, 17, 17]"},
		{"no space", ArrayScheme{Count: 3, Brackets: "{}", Separator: ";"}, "{17;17;17}"},
		{"no brackets", ArrayScheme{Count: 3, Separator: ",", SpaceAfterSeparator: true}, "17, 17, 17"},
		{"newline ignores space", ArrayScheme{Count: 3, Brackets: "()", Separator: "\n", SpaceAfterSeparator: true}, "(17\n17\n17)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scheme.Join(values))
		})
	}
}

func TestStringScheme_Alphabet(t *testing.T) {
	s := StringScheme{SymbolSets: []symbolset.SymbolSet{symbolset.Digits, symbolset.Minus, symbolset.Special}}
	assert.Equal(t, "0123456789-!@#$%^&*", s.Alphabet())

	s.ExcludeLookAlikeSymbols = true
	assert.Equal(t, "23456789-!@#$%^&*", s.Alphabet())
}

func TestWordScheme_Entries(t *testing.T) {
	c := dictionary.NewCache(dictionary.DefaultResources(), nil)
	s := WordScheme{
		BundledDictionaries: []string{"words_simple.dic", "other.dic"},
		UserDictionaries:    []string{"/tmp/a.dic"},
		ActiveBundled:       []string{"words_simple.dic"},
		ActiveUser:          []string{"/tmp/a.dic", "/tmp/b.dic"},
	}

	entries := s.Entries(c)
	require.Len(t, entries, 4)

	assert.Same(t, c.Bundled("words_simple.dic"), entries[0].Dictionary)
	assert.True(t, entries[0].Active)
	assert.Same(t, c.Bundled("other.dic"), entries[1].Dictionary)
	assert.False(t, entries[1].Active)
	assert.Same(t, c.User("/tmp/a.dic"), entries[2].Dictionary)
	assert.True(t, entries[2].Active)
	assert.Same(t, c.User("/tmp/b.dic"), entries[3].Dictionary)
	assert.True(t, entries[3].Active)

	active := s.ActiveDictionaries(c)
	assert.Len(t, active, 3)
}

func TestWordScheme_DuplicatesAreReported(t *testing.T) {
	c := dictionary.NewCache(dictionary.DefaultResources(), nil)
	s := DefaultWordScheme()
	s.BundledDictionaries = []string{dictionary.DefaultBundledDictionary, dictionary.DefaultBundledDictionary}

	failure := dictionary.ValidateSelection(s.Entries(c))
	require.NotNil(t, failure)
	assert.Equal(t, "Dictionaries must be unique.", failure.Message)

	assert.Nil(t, dictionary.ValidateSelection(DefaultWordScheme().Entries(c)))
}

func TestEnclose(t *testing.T) {
	assert.Equal(t, `"abc"`, Enclose("abc", `"`))
	assert.Equal(t, "abc", Enclose("abc", ""))
	assert.Equal(t, "**abc**", Enclose("abc", "**"))
}
