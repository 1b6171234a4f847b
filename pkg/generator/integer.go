package generator

import (
	"math"
	"math/rand/v2"

	"github.com/leapstack-labs/randomness/pkg/scheme"
)

// IntegerGenerator produces random integers.
type IntegerGenerator struct {
	scheme scheme.IntegerScheme
	src    *source
}

// Integer returns a generator of integers in [s.MinValue, s.MaxValue].
func Integer(s scheme.IntegerScheme, opts ...Option) *IntegerGenerator {
	return &IntegerGenerator{scheme: s, src: newSource(opts)}
}

// Generate returns count formatted integers.
func (g *IntegerGenerator) Generate(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := g.scheme.Validate(); err != nil {
		return nil, invalidScheme(err)
	}

	draws := make([]int64, count)
	g.src.with(func(r *rand.Rand) {
		for i := range draws {
			draws[i] = drawInteger(r, g.scheme.MinValue, g.scheme.MaxValue)
		}
	})

	values := make([]string, count)
	for i, v := range draws {
		s, err := g.scheme.Format(v)
		if err != nil {
			return nil, invalidScheme(err)
		}
		values[i] = s
	}
	return values, nil
}

// drawInteger returns a value in [lo, hi], including when the range spans
// all of int64.
func drawInteger(r *rand.Rand, lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int64(r.Uint64())
	}
	return int64(uint64(lo) + r.Uint64N(span+1))
}
