// Package dictionary provides word sources for word generation.
//
// A Dictionary is either bundled (a resource inside an fs.FS) or a user file
// on disk. Validation re-checks the source on every call; the word set is
// read once, after a successful validation, and then kept for the lifetime of
// the instance. Instances are obtained through a Cache so that every key maps
// to exactly one shared Dictionary.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Kind distinguishes the dictionary variants.
type Kind string

const (
	// KindBundled is a dictionary shipped as a resource.
	KindBundled Kind = "bundled"
	// KindUser is a dictionary read from a file chosen by the user.
	KindUser Kind = "user"
)

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(s)) {
	case KindBundled:
		return KindBundled, true
	case KindUser:
		return KindUser, true
	default:
		return "", false
	}
}

// maxLineLength bounds a single dictionary line.
const maxLineLength = 1024 * 1024

// Dictionary is a collection of words that may become inaccessible at any time.
type Dictionary struct {
	kind     Kind
	location string
	open     func() (io.ReadCloser, error)
	logger   *slog.Logger

	loads singleflight.Group
	words atomic.Pointer[WordSet]
}

// newBundled creates a dictionary backed by the resource name in resources.
func newBundled(resources fs.FS, name string, logger *slog.Logger) *Dictionary {
	return &Dictionary{
		kind:     KindBundled,
		location: name,
		logger:   logger,
		open: func() (io.ReadCloser, error) {
			if resources == nil {
				return nil, fs.ErrNotExist
			}
			return resources.Open(name)
		},
	}
}

// newUser creates a dictionary backed by the file at path.
func newUser(path string, logger *slog.Logger) *Dictionary {
	return &Dictionary{
		kind:     KindUser,
		location: path,
		logger:   logger,
		open: func() (io.ReadCloser, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			info, err := f.Stat()
			if err != nil {
				_ = f.Close()
				return nil, err
			}
			if info.IsDir() {
				_ = f.Close()
				return nil, fmt.Errorf("%s is a directory", path)
			}
			return f, nil
		},
	}
}

// Kind returns the variant of the dictionary.
func (d *Dictionary) Kind() Kind {
	return d.kind
}

// Location returns the resource name or file path of the dictionary.
func (d *Dictionary) Location() string {
	return d.location
}

func (d *Dictionary) String() string {
	return fmt.Sprintf("[%s] %s", d.kind, d.location)
}

// Validate returns an InvalidDictionaryError if the source cannot be opened.
// The source is checked anew on every call.
func (d *Dictionary) Validate() error {
	r, err := d.open()
	if err != nil {
		return d.invalid(err)
	}
	_ = r.Close()
	return nil
}

// IsValid reports whether Validate succeeds.
func (d *Dictionary) IsValid() bool {
	return d.Validate() == nil
}

// Words returns the words in the dictionary.
//
// The first successful call validates the source and reads it; later calls
// return the same set. Concurrent first calls share a single read. On failure
// nothing is cached and the next call tries again.
func (d *Dictionary) Words() (*WordSet, error) {
	if w := d.words.Load(); w != nil {
		return w, nil
	}

	v, err, _ := d.loads.Do(d.location, func() (interface{}, error) {
		if w := d.words.Load(); w != nil {
			return w, nil
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}

		w, err := d.read()
		if err != nil {
			return nil, err
		}
		d.words.Store(w)

		if d.logger != nil {
			d.logger.Debug("dictionary loaded", "dictionary", d.String(), "words", w.Len())
		}
		return w, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*WordSet), nil
}

// read extracts the non-blank lines of the source.
func (d *Dictionary) read() (*WordSet, error) {
	r, err := d.open()
	if err != nil {
		return nil, d.invalid(err)
	}
	defer func() { _ = r.Close() }()

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, d.invalid(err)
	}

	return NewWordSet(lines), nil
}

func (d *Dictionary) invalid(cause error) error {
	return &InvalidDictionaryError{Kind: d.kind, Key: d.location, Cause: cause}
}

// WordSet is an immutable, deduplicated, sorted set of words.
type WordSet struct {
	words []string
	index map[string]struct{}
}

// NewWordSet creates a set from words, dropping exact duplicates.
func NewWordSet(words []string) *WordSet {
	index := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := index[w]; ok {
			continue
		}
		index[w] = struct{}{}
		unique = append(unique, w)
	}
	sort.Strings(unique)
	return &WordSet{words: unique, index: index}
}

// Len returns the number of words.
func (s *WordSet) Len() int {
	return len(s.words)
}

// Contains reports whether word is in the set.
func (s *WordSet) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

// At returns the i-th word in sorted order.
func (s *WordSet) At(i int) string {
	return s.words[i]
}

// Slice returns a copy of the words in sorted order.
func (s *WordSet) Slice() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}
