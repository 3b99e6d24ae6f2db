// Package registry provides a global registry for quest levels.
// Built-in levels register themselves in init() functions, allowing the
// platform to discover and load levels without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/codequest-game/codequest/internal/config"
)

// LevelInfo contains metadata about a registered level for listings.
type LevelInfo struct {
	ID          string
	Title       string
	Description string
	Challenges  int
}

// Loader is a function that parses and validates a level definition.
// Levels are re-parsed on every Load so each run gets fresh data.
type Loader func() (*config.Level, error)

var (
	loaders = make(map[string]Loader)
	infos   = make(map[string]LevelInfo)
	mu      sync.RWMutex
)

// Register adds a level loader to the registry.
// Typically called from a level package's init() function.
// Panics if a level with the same ID is already registered or the
// loader cannot produce a valid level.
func Register(id string, l Loader) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := loaders[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	lvl, err := l()
	if err != nil {
		panic(fmt.Sprintf("registry: level %q is invalid: %v", id, err))
	}
	if lvl.ID != id {
		panic(fmt.Sprintf("registry: level %q declares id %q", id, lvl.ID))
	}

	loaders[id] = l
	infos[id] = LevelInfo{
		ID:          lvl.ID,
		Title:       lvl.Title,
		Description: lvl.Description,
		Challenges:  len(lvl.Challenges),
	}
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(loaders))
	for id := range loaders {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load parses a fresh copy of the level with the given ID.
// Returns an error if the level ID is not registered.
func Load(id string) (*config.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := loaders[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}

	return l()
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := loaders[id]
	return ok
}
