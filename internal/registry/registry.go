// Package registry maps data kind names to the generators that produce them.
// Kinds can be looked up by name or by any of their aliases, so that the CLI
// accepts "int" as well as "integer".
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/randomness/internal/config"
	"github.com/leapstack-labs/randomness/pkg/dictionary"
	"github.com/leapstack-labs/randomness/pkg/generator"
)

// Env holds what a Factory may use to build a generator.
type Env struct {
	Config       *config.Config
	Dictionaries *dictionary.Cache
	Options      []generator.Option
}

// Factory builds a generator for one data kind.
type Factory func(env Env) generator.Generator

// Kind describes a data kind that can be generated.
type Kind struct {
	Name    string
	Aliases []string
	Short   string
	// Placeholder is shown instead of random values in previews.
	Placeholder string
	New         Factory
}

// KindRegistry maps kind names and aliases to kinds.
type KindRegistry struct {
	mu sync.RWMutex

	// byName maps canonical names to kinds: "integer" → Kind
	byName map[string]*Kind

	// byAlias maps aliases to canonical names: "int" → "integer"
	byAlias map[string]string
}

// UnknownKindError is returned when a name resolves to no kind.
type UnknownKindError struct {
	Name      string
	Available []string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown data kind %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// NewKindRegistry creates a new empty registry.
func NewKindRegistry() *KindRegistry {
	return &KindRegistry{
		byName:  make(map[string]*Kind),
		byAlias: make(map[string]string),
	}
}

// Register adds a kind to the registry under its name and aliases.
// A later registration with the same name replaces the earlier one.
func (r *KindRegistry) Register(kind *Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(kind.Name)
	r.byName[name] = kind
	for _, alias := range kind.Aliases {
		r.byAlias[strings.ToLower(alias)] = name
	}
}

// Resolve returns the kind registered under name or one of its aliases.
func (r *KindRegistry) Resolve(name string) (*Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := strings.ToLower(strings.TrimSpace(name))
	if kind, ok := r.byName[key]; ok {
		return kind, nil
	}
	if canonical, ok := r.byAlias[key]; ok {
		return r.byName[canonical], nil
	}
	return nil, &UnknownKindError{Name: name, Available: r.namesLocked()}
}

// Names returns the canonical names of all kinds, sorted.
func (r *KindRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *KindRegistry) namesLocked() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all kinds sorted by name.
func (r *KindRegistry) All() []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]*Kind, 0, len(r.byName))
	for _, name := range r.namesLocked() {
		kinds = append(kinds, r.byName[name])
	}
	return kinds
}

// Count returns the number of registered kinds.
func (r *KindRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
