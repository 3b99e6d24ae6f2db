// Package levels ships the built-in quests as embedded YAML definitions.
// Importing the package registers every level with the registry.
package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/codequest-game/codequest/internal/config"
	"github.com/codequest-game/codequest/internal/registry"
)

//go:embed data/*.yaml
var levelFS embed.FS

func init() {
	entries, err := fs.ReadDir(levelFS, "data")
	if err != nil {
		panic(fmt.Sprintf("levels: reading embedded levels: %v", err))
	}
	for _, e := range entries {
		raw, err := levelFS.ReadFile("data/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("levels: reading %s: %v", e.Name(), err))
		}
		lvl, err := config.ParseLevel(raw)
		if err != nil {
			panic(fmt.Sprintf("levels: %s: %v", e.Name(), err))
		}
		data := raw
		registry.Register(lvl.ID, func() (*config.Level, error) {
			return config.ParseLevel(data)
		})
	}
}
