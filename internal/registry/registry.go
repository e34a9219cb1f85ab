// Package registry provides a global registry for level sets.
// Sets register themselves in init() functions or at startup (level packs
// loaded from disk), so the platform can offer them without hardcoded
// dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/star-hopper/internal/level"
)

// DefaultSet is the ID of the set played when none is named.
const DefaultSet = "classic"

// ErrUnknownSet is returned (wrapped) when a set ID is not registered.
var ErrUnknownSet = errors.New("unknown level set")

// SetInfo contains metadata about a registered level set.
type SetInfo struct {
	ID     string
	Title  string
	Levels int
}

// Factory is a function that builds a fresh copy of a level set.
type Factory func() level.Set

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]SetInfo)
	mu        sync.RWMutex
)

// Register adds a level set factory to the registry.
// Panics if a set with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level set %q already registered", id))
	}

	factories[id] = f

	// Cache metadata from a temporary instance
	s := f()
	title := s.Title
	if title == "" {
		title = id
	}
	infos[id] = SetInfo{ID: id, Title: title, Levels: s.Len()}
}

// List returns information about all registered sets, sorted by ID.
func List() []SetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SetInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get builds the level set registered under id.
func Get(id string) (level.Set, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return level.Set{}, fmt.Errorf("registry: %w %q", ErrUnknownSet, id)
	}

	s := f()
	if s.ID == "" {
		s.ID = id
	}
	return s, nil
}

// Exists checks if a set with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
