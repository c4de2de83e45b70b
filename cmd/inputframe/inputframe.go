package main

import (
	"os"

	"github.com/Alia5/inputframe/internal/config"
	"github.com/Alia5/inputframe/internal/configpaths"
	"github.com/Alia5/inputframe/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	paths := configpaths.ConfigCandidatePaths(configpaths.UserConfig(os.Args[1:]))

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("inputframe"),
		kong.Description("Per-frame keyboard, mouse and text input state, with cursor grab control"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var eventLogger log.EventLogger
	switch {
	case cli.Log.RawFile != "":
		f, err := os.OpenFile(cli.Log.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cli.Log.RawFile, "error", err)
			eventLogger = log.NewEventLogger(nil)
		} else {
			eventLogger = log.NewEventLogger(f)
			closeFiles = append(closeFiles, f)
		}
	case cli.Log.Level == "trace":
		eventLogger = log.NewEventLogger(os.Stderr)
	default:
		eventLogger = log.NewEventLogger(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(eventLogger, (*log.EventLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
