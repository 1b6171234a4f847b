package dictionary

import (
	"embed"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/randomness/pkg/cache"
)

// DefaultBundledDictionary is the name of the dictionary shipped with the module.
const DefaultBundledDictionary = "words_simple.dic"

//go:embed resources/*.dic
var embedded embed.FS

// DefaultResources returns the bundled dictionaries shipped with the module.
func DefaultResources() fs.FS {
	sub, err := fs.Sub(embedded, "resources")
	if err != nil {
		// embedded always contains the resources directory
		panic(err)
	}
	return sub
}

// BundledNames lists the dictionary resources available in resources.
func BundledNames(resources fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(resources, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".dic") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Cache hands out one shared Dictionary per kind and key.
//
// It is safe for concurrent use. Instances live until the Cache is dropped or
// the key is refreshed.
type Cache struct {
	resources fs.FS
	logger    *slog.Logger
	bundled   *cache.Cache[string, *Dictionary]
	user      *cache.Cache[string, *Dictionary]
}

// NewCache creates a cache resolving bundled dictionaries in resources.
// A nil logger discards log output.
func NewCache(resources fs.FS, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Cache{resources: resources, logger: logger}
	c.bundled = cache.New(func(name string) *Dictionary {
		logger.Debug("creating dictionary", "kind", KindBundled, "location", name)
		return newBundled(resources, name, logger)
	})
	c.user = cache.New(func(path string) *Dictionary {
		logger.Debug("creating dictionary", "kind", KindUser, "location", path)
		return newUser(path, logger)
	})
	return c
}

// Resources returns the file system bundled dictionaries are read from.
func (c *Cache) Resources() fs.FS {
	return c.resources
}

// Bundled returns the shared bundled dictionary with the given resource name.
func (c *Cache) Bundled(name string) *Dictionary {
	return c.bundled.Get(name)
}

// User returns the shared user dictionary for the file at path.
func (c *Cache) User(path string) *Dictionary {
	return c.user.Get(path)
}

// RefreshBundled replaces the cached bundled dictionary for name.
func (c *Cache) RefreshBundled(name string) *Dictionary {
	c.logger.Debug("refreshing dictionary", "kind", KindBundled, "location", name)
	return c.bundled.Refresh(name)
}

// RefreshUser replaces the cached user dictionary for path, so that changed
// file contents are read again. Other dictionaries are unaffected.
func (c *Cache) RefreshUser(path string) *Dictionary {
	c.logger.Debug("refreshing dictionary", "kind", KindUser, "location", path)
	return c.user.Refresh(path)
}

// Get returns the dictionary of the given kind, optionally refreshing it first.
func (c *Cache) Get(kind Kind, key string, forceRefresh bool) *Dictionary {
	switch {
	case kind == KindBundled && forceRefresh:
		return c.RefreshBundled(key)
	case kind == KindBundled:
		return c.Bundled(key)
	case forceRefresh:
		return c.RefreshUser(key)
	default:
		return c.User(key)
	}
}

// All returns every cached dictionary, bundled ones first, each group sorted
// by location.
func (c *Cache) All() []*Dictionary {
	less := func(a, b string) bool { return a < b }

	var all []*Dictionary
	for _, key := range c.bundled.Keys(less) {
		all = append(all, c.bundled.Get(key))
	}
	for _, key := range c.user.Keys(less) {
		all = append(all, c.user.Get(key))
	}
	return all
}
