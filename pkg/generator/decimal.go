package generator

import (
	"math"
	"math/rand/v2"

	"github.com/leapstack-labs/randomness/pkg/scheme"
)

// DecimalGenerator produces random decimal numbers.
type DecimalGenerator struct {
	scheme scheme.DecimalScheme
	src    *source
}

// Decimal returns a generator of decimals in [s.MinValue, s.MaxValue].
func Decimal(s scheme.DecimalScheme, opts ...Option) *DecimalGenerator {
	return &DecimalGenerator{scheme: s, src: newSource(opts)}
}

// Generate returns count formatted decimals.
func (g *DecimalGenerator) Generate(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := g.scheme.Validate(); err != nil {
		return nil, invalidScheme(err)
	}

	values := make([]string, count)
	g.src.with(func(r *rand.Rand) {
		for i := range values {
			values[i] = g.scheme.Format(drawDecimal(r, g.scheme.MinValue, g.scheme.MaxValue))
		}
	})
	return values, nil
}

// drawDecimal returns a value in [lo, hi]. The draw uses the next float above
// hi as its exclusive ceiling so that hi itself can be produced.
func drawDecimal(r *rand.Rand, lo, hi float64) float64 {
	if lo == hi {
		return lo
	}

	ceiling := math.Nextafter(hi, math.Inf(1))
	if math.IsInf(ceiling, 1) {
		ceiling = hi
	}

	f := r.Float64()
	v := (1-f)*lo + f*ceiling
	return math.Max(lo, math.Min(v, hi))
}
