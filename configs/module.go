package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type ConfigPaths []string

// ConfigPaths lists candidate config files, working directory first so a
// project-local jas.cue overrides the user-level one.
func (Module) ConfigPaths() ConfigPaths {
	paths := []string{
		"jas.cue",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "jas", "config.cue"))
	}
	return paths
}

func (Module) Loader(
	paths ConfigPaths,
) Loader {
	return NewLoader(paths)
}
