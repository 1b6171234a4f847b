package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_Generate(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		brackets  string
		separator string
		space     bool
		want      string
	}{
		{"default", 3, "[]", ",", true, "[17, 17, 17]"},
		{"curly without space", 3, "{}", ",", false, "{17,17,17}"},
		{"parentheses semicolon", 2, "()", ";", true, "(17; 17)"},
		{"no brackets", 3, "", ",", true, "17, 17, 17"},
		{"newline ignores space", 3, "[]", "\n", true, "[17\n17\n17]"},
		{"newline without space", 3, "[]", "\n", false, "[17\n17\n17]"},
		{"single value", 1, "[]", ",", true, "[17]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Array(Fixed("17"), arrayScheme(tt.count, tt.brackets, tt.separator, tt.space))

			values, err := g.Generate(1)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, values)
		})
	}
}

func TestArray_OuterCount(t *testing.T) {
	calls := 0
	base := Func(func(count int) ([]string, error) {
		calls++
		return Fixed("x").Generate(count)
	})

	values, err := Array(base, arrayScheme(2, "[]", ",", false)).Generate(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"[x,x]", "[x,x]", "[x,x]", "[x,x]"}, values)
	assert.Equal(t, 4, calls, "each array draws its own batch")
}

func TestArray_NewlineNeverFollowedBySpace(t *testing.T) {
	g := Array(String(defaultString(), WithSeed(7)), arrayScheme(10, "", "\n", true))

	values, err := g.Generate(5)
	require.NoError(t, err)
	for _, v := range values {
		assert.NotContains(t, v, "\n ")
		assert.Len(t, strings.Split(v, "\n"), 10)
	}
}

func TestArray_InvalidScheme(t *testing.T) {
	_, err := Array(Fixed("x"), arrayScheme(0, "[]", ",", true)).Generate(1)
	assert.ErrorIs(t, err, ErrDataGeneration)

	_, err = Array(Fixed("x"), arrayScheme(2, "<>", ",", true)).Generate(1)
	assert.ErrorIs(t, err, ErrDataGeneration)
}

func TestArray_BaseErrorPropagates(t *testing.T) {
	boom := &DataGenerationError{Message: "boom"}
	base := Func(func(int) ([]string, error) { return nil, boom })

	_, err := Array(base, arrayScheme(2, "[]", ",", true)).Generate(1)
	assert.True(t, errors.Is(err, boom))
}

func TestArray_BaseReturnsWrongCount(t *testing.T) {
	base := Func(func(int) ([]string, error) { return []string{"only"}, nil })

	_, err := Array(base, arrayScheme(3, "[]", ",", true)).Generate(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataGeneration)
}
