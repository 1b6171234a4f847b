package generator

import (
	"fmt"

	"github.com/leapstack-labs/randomness/pkg/scheme"
)

// ArrayGenerator wraps a generator to produce arrays of its values.
type ArrayGenerator struct {
	base   Generator
	scheme scheme.ArrayScheme
}

// Array returns a generator that produces arrays of s.Count values of base.
func Array(base Generator, s scheme.ArrayScheme) *ArrayGenerator {
	return &ArrayGenerator{base: base, scheme: s}
}

// Generate returns count arrays. Each array is built from its own batch of
// base values.
func (g *ArrayGenerator) Generate(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := g.scheme.Validate(); err != nil {
		return nil, invalidScheme(err)
	}

	arrays := make([]string, count)
	for i := range arrays {
		values, err := g.base.Generate(g.scheme.Count)
		if err != nil {
			return nil, err
		}
		if len(values) != g.scheme.Count {
			return nil, &DataGenerationError{
				Message: fmt.Sprintf("base generator returned %d values instead of %d", len(values), g.scheme.Count),
			}
		}
		arrays[i] = g.scheme.Join(values)
	}
	return arrays, nil
}
