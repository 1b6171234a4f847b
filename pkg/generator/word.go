package generator

import (
	"math/rand/v2"
	"sort"
	"unicode/utf8"

	"github.com/leapstack-labs/randomness/pkg/dictionary"
	"github.com/leapstack-labs/randomness/pkg/scheme"
)

// WordGenerator produces words from the active dictionaries of a scheme.
type WordGenerator struct {
	scheme       scheme.WordScheme
	dictionaries *dictionary.Cache
	src          *source
}

// Word returns a generator of words resolved through dictionaries.
func Word(s scheme.WordScheme, dictionaries *dictionary.Cache, opts ...Option) *WordGenerator {
	return &WordGenerator{scheme: s, dictionaries: dictionaries, src: newSource(opts)}
}

// Generate returns count words.
func (g *WordGenerator) Generate(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := g.scheme.Validate(); err != nil {
		return nil, invalidScheme(err)
	}

	entries := g.scheme.Entries(g.dictionaries)
	if failure := dictionary.ValidateSelection(entries); failure != nil {
		return nil, &DataGenerationError{Message: failure.Message}
	}

	candidates, err := g.candidates(dictionary.Active(entries))
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, &DataGenerationError{
			Message: "There are no words within the configured length range.",
		}
	}

	values := make([]string, count)
	g.src.with(func(r *rand.Rand) {
		for i := range values {
			word := candidates[r.IntN(len(candidates))]
			word = g.scheme.Capitalization.Apply(word, coin(r))
			values[i] = scheme.Enclose(word, g.scheme.Enclosure)
		}
	})
	return values, nil
}

// candidates returns the sorted union of the words of active within the
// length bounds of the scheme.
func (g *WordGenerator) candidates(active []*dictionary.Dictionary) ([]string, error) {
	seen := make(map[string]struct{})
	var words []string
	for _, d := range active {
		set, err := d.Words()
		if err != nil {
			return nil, &DataGenerationError{Message: "failed to read dictionary", Cause: err}
		}
		for i := 0; i < set.Len(); i++ {
			w := set.At(i)
			n := utf8.RuneCountInString(w)
			if n < g.scheme.MinLength || n > g.scheme.MaxLength {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	sort.Strings(words)
	return words, nil
}
