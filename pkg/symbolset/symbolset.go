// Package symbolset provides named character sets and the algebra used to
// combine them into alphabets for string generation.
package symbolset

import "strings"

// SymbolSet is a named collection of symbols.
//
// Sets are identified by name when merged; the symbols are kept verbatim.
type SymbolSet struct {
	Name    string `koanf:"name" yaml:"name" json:"name"`
	Symbols string `koanf:"symbols" yaml:"symbols" json:"symbols"`
}

// String returns the name of the set.
func (s SymbolSet) String() string {
	return s.Name
}

// Predefined symbol sets.
var (
	Alphabet    = SymbolSet{Name: "Alphabet (a, b, c, ...)", Symbols: "abcdefghijklmnopqrstuvwxyz"}
	Digits      = SymbolSet{Name: "Digits (0, 1, 2, ...)", Symbols: "0123456789"}
	Hexadecimal = SymbolSet{Name: "Hexadecimal (0, 1, 2, ..., d, e, f)", Symbols: "0123456789abcdef"}
	Minus       = SymbolSet{Name: "Minus (-)", Symbols: "-"}
	Underscore  = SymbolSet{Name: "Underscore (_)", Symbols: "_"}
	Special     = SymbolSet{Name: "Special (!, @, #, $, %, ^, &, *)", Symbols: "!@#$%^&*"}
	Space       = SymbolSet{Name: "Space ( )", Symbols: " "}
	Brackets    = SymbolSet{Name: "Brackets ((, ), [, ], {, }, <, >)", Symbols: "()[]{}<>"}
)

// LookAlikeSymbols contains symbols that are easily confused with one another.
const LookAlikeSymbols = "01lLiIoO"

// Defaults returns the predefined symbol sets in display order.
func Defaults() []SymbolSet {
	return []SymbolSet{Alphabet, Digits, Hexadecimal, Minus, Underscore, Special, Space, Brackets}
}

// Lookup returns the predefined symbol set with the given name.
// The short names "alphabet", "digits", etc. are accepted as well.
func Lookup(name string) (SymbolSet, bool) {
	for _, s := range Defaults() {
		if s.Name == name || strings.EqualFold(shortName(s), name) {
			return s, true
		}
	}
	return SymbolSet{}, false
}

// shortName returns the first word of a set's name, e.g. "Alphabet".
func shortName(s SymbolSet) string {
	if i := strings.IndexByte(s.Name, ' '); i >= 0 {
		return s.Name[:i]
	}
	return s.Name
}

// Merge returns every distinct symbol of the given sets, in order of first
// occurrence. Each symbol appears exactly once in the result.
func Merge(sets []SymbolSet) string {
	var b strings.Builder
	seen := make(map[rune]struct{})

	for _, set := range ToSymbolSets(mergeByName(sets)) {
		for _, r := range set.Symbols {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			b.WriteRune(r)
		}
	}

	return b.String()
}

// mergeByName combines sets sharing a name into a single entry holding the
// union of their symbols.
func mergeByName(sets []SymbolSet) *Map {
	m := NewMap()
	for _, set := range sets {
		existing, _ := m.Get(set.Name)
		m.Set(set.Name, Dedupe(existing+set.Symbols))
	}
	return m
}

// Dedupe removes repeated symbols from s, keeping first occurrences.
func Dedupe(s string) string {
	var b strings.Builder
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}
	return b.String()
}

// ExcludeLookAlikes removes the LookAlikeSymbols from symbols.
func ExcludeLookAlikes(symbols string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(LookAlikeSymbols, r) {
			return -1
		}
		return r
	}, symbols)
}

// ToMap converts sets into an ordered map from name to symbols.
// Sets with the same name collapse into one entry holding the later symbols.
func ToMap(sets []SymbolSet) *Map {
	m := NewMap()
	for _, set := range sets {
		m.Set(set.Name, set.Symbols)
	}
	return m
}

// ToSymbolSets converts m into one symbol set per entry, in map order.
func ToSymbolSets(m *Map) []SymbolSet {
	if m == nil {
		return nil
	}
	sets := make([]SymbolSet, 0, m.Len())
	for _, name := range m.names {
		sets = append(sets, SymbolSet{Name: name, Symbols: m.symbols[name]})
	}
	return sets
}

// Map is a name to symbols mapping that remembers insertion order.
type Map struct {
	names   []string
	symbols map[string]string
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{symbols: make(map[string]string)}
}

// Set stores symbols under name. A new name is appended at the end; an
// existing name keeps its position.
func (m *Map) Set(name, symbols string) {
	if _, ok := m.symbols[name]; !ok {
		m.names = append(m.names, name)
	}
	m.symbols[name] = symbols
}

// Get returns the symbols stored under name.
func (m *Map) Get(name string) (string, bool) {
	s, ok := m.symbols[name]
	return s, ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.names)
}

// Names returns the entry names in insertion order.
func (m *Map) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}
