package generator

import (
	"math/rand/v2"
	"strings"

	"github.com/leapstack-labs/randomness/pkg/scheme"
)

// StringGenerator produces random strings.
type StringGenerator struct {
	scheme scheme.StringScheme
	src    *source
}

// String returns a generator of strings drawn from the alphabet of s.
func String(s scheme.StringScheme, opts ...Option) *StringGenerator {
	return &StringGenerator{scheme: s, src: newSource(opts)}
}

// Generate returns count strings.
func (g *StringGenerator) Generate(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := g.scheme.Validate(); err != nil {
		return nil, invalidScheme(err)
	}

	alphabet := []rune(g.scheme.Alphabet())
	values := make([]string, count)
	g.src.with(func(r *rand.Rand) {
		for i := range values {
			length := g.scheme.MinLength + r.IntN(g.scheme.MaxLength-g.scheme.MinLength+1)

			var b strings.Builder
			for j := 0; j < length; j++ {
				b.WriteRune(alphabet[r.IntN(len(alphabet))])
			}

			value := g.scheme.Capitalization.Apply(b.String(), coin(r))
			values[i] = scheme.Enclose(value, g.scheme.Enclosure)
		}
	})
	return values, nil
}
