package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/matexport/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("matexport", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
matexport - Exports mesh to shader assignments and shader inputs as JSON.

Usage:
  matexport [options] [SCENE_PATH...]

Arguments:
  SCENE_PATH
    Path to a single .hcl scene snapshot or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	sceneFlag := flagSet.String("scene", "", "Path to the scene snapshot file or directory.")
	sFlag := flagSet.String("s", "", "Path to the scene snapshot file or directory (shorthand).")
	outFlag := flagSet.String("out", "", "Destination: '-' for stdout, a file path, or s3://bucket/key. Empty cancels the export.")
	oFlag := flagSet.String("o", "", "Destination (shorthand).")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cacheFlag := flagSet.Int("resolve-cache", 256, "Number of resolved texture plugs to cache. 0 disables the cache.")
	envFileFlag := flagSet.String("env-file", ".env", "Optional dotenv file with S3 settings.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	if *sceneFlag != "" {
		paths = append(paths, *sceneFlag)
	}
	if *sFlag != "" {
		paths = append(paths, *sFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Scene paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No scene path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	dest := *outFlag
	if dest == "" {
		dest = *oFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	if err := app.LoadEnvFile(*envFileFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	config, err := app.NewConfig(app.Config{
		ScenePaths:       paths,
		Output:           dest,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		ResolveCacheSize: *cacheFlag,
		S3:               app.S3ConfigFromEnv(),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
