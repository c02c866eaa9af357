package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitcraft/internal/constants"
	"github.com/julianstephens/habitcraft/internal/errors"
)

// ResolveConfigDir finds the config directory before kong parses the
// command line, so config.json can be loaded from it. Precedence matches
// the --config-dir flag: argument, then environment, then default.
func ResolveConfigDir(args []string, getenv func(string) string) string {
	dir := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if value, ok := strings.CutPrefix(arg, constants.ConfigDirFlag+"="); ok {
			dir = value
			continue
		}
		if arg == constants.ConfigDirFlag && i+1 < len(args) {
			dir = args[i+1]
			i++
		}
	}
	if dir == "" {
		dir = getenv(constants.ConfigDirEnv)
	}
	if dir == "" {
		dir = constants.DefaultConfigDir
	}
	return kong.ExpandPath(dir)
}

// ConfigPath returns the config file inside dir
func ConfigPath(dir string) string {
	return filepath.Join(dir, constants.ConfigFileName)
}

// ConfigLoader reads config.json like kong.JSON, but a malformed file is
// reported to warn and ignored so that commands such as doctor still run.
func ConfigLoader(warn io.Writer) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		resolver, err := kong.JSON(r)
		if err != nil {
			fmt.Fprintln(warn, errors.Formatf("ignoring %s: %v", constants.ConfigFileName, err))
			return emptyResolver, nil
		}
		return resolver, nil
	}
}

var emptyResolver = kong.ResolverFunc(func(*kong.Context, *kong.Path, *kong.Flag) (interface{}, error) {
	return nil, nil
})
