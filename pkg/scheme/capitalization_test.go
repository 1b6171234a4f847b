package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCapitalization(t *testing.T) {
	tests := []struct {
		input  string
		want   CapitalizationMode
		wantOK bool
	}{
		{"retain", CapitalizationRetain, true},
		{"UPPER", CapitalizationUpper, true},
		{"first letter", CapitalizationFirstLetter, true},
		{"first-letter", CapitalizationFirstLetter, true},
		{"First_Letter", CapitalizationFirstLetter, true},
		{" random ", CapitalizationRandom, true},
		{"camel", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCapitalization(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapitalizationMode_Apply(t *testing.T) {
	tests := []struct {
		mode  CapitalizationMode
		input string
		want  string
	}{
		{CapitalizationRetain, "hELLo woRLD", "hELLo woRLD"},
		{CapitalizationSentence, "hELLo woRLD", "Hello world"},
		{CapitalizationUpper, "hELLo woRLD", "HELLO WORLD"},
		{CapitalizationLower, "hELLo woRLD", "hello world"},
		{CapitalizationFirstLetter, "hELLo woRLD", "Hello World"},
		{CapitalizationSentence, "", ""},
		{CapitalizationUpper, "ärger", "ÄRGER"},
		{"First-Letter", "hELLo woRLD", "Hello World"},
		{"UPPER", "abc", "ABC"},
		{"unknown", "aBc", "aBc"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Apply(tt.input, nil))
		})
	}
}

func TestCapitalizationMode_ApplyRandom(t *testing.T) {
	flips := []bool{true, false, true, false}
	i := 0
	coin := func() bool {
		v := flips[i%len(flips)]
		i++
		return v
	}

	assert.Equal(t, "AbCd", CapitalizationRandom.Apply("abcd", coin))
	assert.Equal(t, "abCD", CapitalizationRandom.Apply("abCD", nil))
}
