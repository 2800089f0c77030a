package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/decaf/configs"
	"github.com/reusee/decaf/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"decaflex.cue",
	".decaflex.cue",
}

// ConfigDirs lists where config files are searched, highest precedence
// first.
type ConfigDirs []string

func (Module) ConfigDirs() ConfigDirs {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	dirs ConfigDirs,
	logger logs.Logger,
) configs.Loader {
	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
