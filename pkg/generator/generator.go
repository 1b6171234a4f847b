// Package generator produces random values from schemes.
//
// Every generator implements Generator. Generate returns exactly count values
// or an error; it never returns a partial batch. Array wraps any generator so
// that each value it returns is a bracketed, delimited sequence of values of
// the wrapped generator.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/leapstack-labs/randomness/pkg/scheme"
)

// ErrDataGeneration is wrapped by every DataGenerationError.
var ErrDataGeneration = errors.New("data generation failed")

// DataGenerationError reports that values could not be generated, usually
// because the scheme is inconsistent.
type DataGenerationError struct {
	Message string
	Cause   error
}

func (e *DataGenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DataGenerationError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrDataGeneration) match.
func (e *DataGenerationError) Is(target error) bool {
	return target == ErrDataGeneration
}

// Generator produces random values.
type Generator interface {
	// Generate returns count values. A negative count is an error.
	Generate(count int) ([]string, error)
}

// Func adapts a function to Generator.
type Func func(count int) ([]string, error)

// Generate calls f.
func (f Func) Generate(count int) ([]string, error) {
	return f(count)
}

// Option configures a generator.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand makes the generator draw from r instead of a randomly seeded
// source. The generator serializes its own access to r.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed makes the generator deterministic.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// source is a random source that is safe for concurrent use.
type source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSource(opts []Option) *source {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &source{rng: o.rng}
}

// with runs f while holding exclusive access to the random source.
func (s *source) with(f func(r *rand.Rand)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.rng)
}

// coin returns a fair coin for r. Only call it while holding the source.
func coin(r *rand.Rand) scheme.Coin {
	return func() bool { return r.IntN(2) == 0 }
}

func checkCount(count int) error {
	if count < 0 {
		return &DataGenerationError{Message: fmt.Sprintf("count must not be negative, got %d", count)}
	}
	return nil
}

// invalidScheme converts a scheme validation error into a DataGenerationError.
func invalidScheme(err error) error {
	return &DataGenerationError{Message: "invalid scheme", Cause: err}
}

// Fixed returns a generator that always returns value. It is used for
// previews where a placeholder is shown instead of random data.
func Fixed(value string) Generator {
	return Func(func(count int) ([]string, error) {
		if err := checkCount(count); err != nil {
			return nil, err
		}
		values := make([]string, count)
		for i := range values {
			values[i] = value
		}
		return values, nil
	})
}
