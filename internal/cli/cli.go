// Package cli turns command-line arguments and the environment into a
// validated configuration.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bjaus/rowtable"
	"github.com/bjaus/rowtable/internal/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

const usage = `
rowtable - regroup every N lines of input into one row.

Usage:
  rowtable [options] [FILE...]
  rowtable [options] --stdin
  rowtable [options] -

Each FILE is processed on its own and written in full before the next.
With no FILE, --stdin (or a lone "-") reads standard input.

Output file templates (--outfnfmt) may use {fnroot}, {ext}, {basename}
and {dirname}, e.g. "{dirname}/{fnroot}-table{ext}".

Options:
`

// Parse processes command-line arguments against environ, the process
// environment in [os.Environ] form. Usage text and flag errors are written to
// output, which callers point at stderr. It returns the final configuration, a
// boolean indicating the program should exit cleanly, or an [ExitError].
func Parse(args []string, output io.Writer, environ []string) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	fs := flag.NewFlagSet("rowtable", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}

	var (
		over       config.Overlay
		nrows      int
		escape     bool
		escapeSet  bool
		stdin      bool
		configPath string
		envFile    string
		header     string
		maxWidth   int
		wrap       int
		sep        string
		outFnFmt   string
		format     string
		title      string
		border     string
		number     bool
		logLevel   string
		logFormat  string
	)
	fs.IntVar(&nrows, "nrows", 2, "Number of consecutive lines grouped into one row.")
	fs.IntVar(&nrows, "r", 2, "Number of consecutive lines grouped into one row (shorthand).")
	fs.StringVar(&sep, "sep", rowtable.DefaultSep, "Separator joining the fields of a row.")
	fs.BoolFunc("escape", "Decode backslash escapes in --sep, e.g. \\t (default).", func(string) error {
		escape, escapeSet = true, true
		return nil
	})
	fs.BoolFunc("no-escape", "Use --sep exactly as given.", func(string) error {
		escape, escapeSet = false, true
		return nil
	})
	fs.StringVar(&outFnFmt, "outfnfmt", "", "Write each input to a file named by this template instead of stdout.")
	fs.BoolVar(&stdin, "stdin", false, "Read standard input when no FILE is given.")
	fs.StringVar(&format, "format", "plain", fmt.Sprintf("Output format: %s, or go-template=<tmpl>.", formatNames()))
	fs.StringVar(&header, "header", "", "Comma-separated column names, one per line of a group.")
	fs.StringVar(&title, "title", "", "Title above a table.")
	fs.StringVar(&border, "border", "rounded", "Table border: rounded, ascii, heavy, double, none.")
	fs.BoolVar(&number, "number", false, "Prepend a row number column to a table.")
	fs.IntVar(&maxWidth, "max-width", 0, "Truncate table cells wider than this. 0 is no limit.")
	fs.IntVar(&wrap, "wrap", 0, "Wrap table cells wider than this. 0 disables wrapping.")
	fs.StringVar(&configPath, "config", "", "YAML configuration file. Defaults to $ROWTABLE_CONFIG.")
	fs.StringVar(&envFile, "env-file", "", "Read ROWTABLE_* variables from this file. Defaults to ./.env if present.")
	fs.StringVar(&logLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&logFormat, "log-format", "", "Log output format: 'text' or 'json'.")

	// Flags may follow file names, as in "rowtable data.txt -r 3".
	var positional []string
	for rest := args; ; {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, true, nil
			}
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}
	slog.Debug("Arguments parsed successfully.")

	// Only flags given on the command line override lower layers.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nrows", "r":
			over.NRows = &nrows
		case "sep":
			over.Sep = &sep
		case "outfnfmt":
			over.OutFnFmt = &outFnFmt
		case "format":
			over.Format = &format
		case "header":
			over.Header = config.SplitList(header)
		case "title":
			over.Title = &title
		case "border":
			over.Border = &border
		case "number":
			over.Number = &number
		case "max-width":
			over.MaxWidth = &maxWidth
		case "wrap":
			over.Wrap = &wrap
		case "log-level":
			over.Logging.Level = &logLevel
		case "log-format":
			over.Logging.Format = &logFormat
		}
	})
	if escapeSet {
		over.Escape = &escape
	}

	var inputs []string
	for _, arg := range positional {
		if arg == "-" {
			stdin = true
			continue
		}
		inputs = append(inputs, arg)
	}
	if len(inputs) == 0 && !stdin {
		slog.Debug("No input given, printing usage and exiting.")
		fs.Usage()
		return nil, true, nil
	}

	cfg, err := load(environ, envFile, configPath, over)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	cfg.Inputs = inputs
	cfg.Stdin = stdin

	if err := config.Validate(cfg); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid configuration:\n" + err.Error()}
	}
	slog.Debug("CLI parser finished successfully.", "inputs", len(inputs), "stdin", stdin)
	return &cfg, false, nil
}

// load layers defaults, the config file, the environment (seeded from a .env
// file) and the command line.
func load(environ []string, envFile, configPath string, cli config.Overlay) (config.Config, error) {
	dotenvPath, required := ".env", false
	if envFile != "" {
		dotenvPath, required = envFile, true
	}
	dotenv, err := config.ReadDotEnv(dotenvPath, required)
	if err != nil {
		return config.Config{}, fmt.Errorf("env file: %w", err)
	}
	environ = config.WithDotEnv(environ, dotenv)

	cfg := config.Defaults()
	if configPath == "" {
		configPath, _ = config.Lookup(environ, config.EnvPrefix+"CONFIG")
	}
	if configPath != "" {
		file, err := config.LoadFile(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("config file: %w", err)
		}
		cfg = cfg.Apply(file)
	}
	env, err := config.EnvOverlay(environ)
	if err != nil {
		return config.Config{}, fmt.Errorf("environment: %w", err)
	}
	return cfg.Apply(env).Apply(cli), nil
}

func formatNames() string {
	var names []string
	for _, f := range rowtable.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
