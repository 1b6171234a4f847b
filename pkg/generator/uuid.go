package generator

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/leapstack-labs/randomness/pkg/scheme"
)

// UUIDGenerator produces UUIDs.
type UUIDGenerator struct {
	scheme scheme.UUIDScheme
	src    *source
}

// UUID returns a generator of UUIDs of version s.Version.
func UUID(s scheme.UUIDScheme, opts ...Option) *UUIDGenerator {
	return &UUIDGenerator{scheme: s, src: newSource(opts)}
}

// Generate returns count UUIDs.
func (g *UUIDGenerator) Generate(count int) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := g.scheme.Validate(); err != nil {
		return nil, invalidScheme(err)
	}

	values := make([]string, count)
	var genErr error
	g.src.with(func(r *rand.Rand) {
		reader := randReader{r}
		for i := range values {
			id, err := g.newUUID(reader)
			if err != nil {
				genErr = &DataGenerationError{Message: fmt.Sprintf("failed to create version %d UUID", g.scheme.Version), Cause: err}
				return
			}

			value := id.String()
			if !g.scheme.AddDashes {
				value = strings.ReplaceAll(value, "-", "")
			}
			value = g.scheme.Capitalization.Apply(value, coin(r))
			values[i] = scheme.Enclose(value, g.scheme.Enclosure)
		}
	})
	if genErr != nil {
		return nil, genErr
	}
	return values, nil
}

func (g *UUIDGenerator) newUUID(reader randReader) (uuid.UUID, error) {
	switch g.scheme.Version {
	case 1:
		return uuid.NewUUID()
	case 7:
		return uuid.NewV7FromReader(reader)
	default:
		return uuid.NewRandomFromReader(reader)
	}
}

// randReader exposes a random source as an io.Reader.
type randReader struct {
	r *rand.Rand
}

func (rr randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += len(buf) {
		binary.LittleEndian.PutUint64(buf[:], rr.r.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
