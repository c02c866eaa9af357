package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitcraft/internal/cli"
	"github.com/julianstephens/habitcraft/internal/constants"
	"github.com/julianstephens/habitcraft/internal/errors"
	"github.com/julianstephens/habitcraft/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	Debug     bool   `help:"Enable debug logging to stderr." env:"HABITCRAFT_DEBUG"`
	ConfigDir string `help:"Directory holding config.json and logs." type:"path" default:"${config_dir}" env:"HABITCRAFT_CONFIG_DIR"`

	Validate cli.ValidateCmd `cmd:"" help:"Validate JSON payloads against a schema kind."`
	Example  cli.ExampleCmd  `cmd:"" help:"Print a valid sample payload."`
	Kinds    cli.KindsCmd    `cmd:"" help:"List accepted payload kinds."`
	Habit    cli.HabitCmd    `cmd:"" help:"Compose habit payloads."`
	Health   cli.HealthCmd   `cmd:"" help:"Print a health response."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run configuration and schema diagnostics."`
}

func main() {
	configDir := cli.ResolveConfigDir(os.Args[1:], os.Getenv)

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Schema and validation toolkit for HabitCraft API payloads"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(cli.ConfigLoader(os.Stderr), cli.ConfigPath(configDir)),
		kong.Vars{
			"version":    constants.Version,
			"config_dir": constants.DefaultConfigDir,
		},
	)

	// The directory config.json was read from wins over a config-dir key inside it
	CLI.ConfigDir = configDir

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: CLI.ConfigDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	logger.Info("Running command", "command", ctx.Command(), "config_dir", CLI.ConfigDir)

	err := ctx.Run(cli.NewContext(CLI.ConfigDir))
	errors.Fatal(err)
}
