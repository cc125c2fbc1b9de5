package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/bjaus/rowtable"
	"github.com/bjaus/rowtable/internal/config"
	"github.com/bjaus/rowtable/internal/outpath"
)

// App holds one invocation's configuration and I/O endpoints.
type App struct {
	cfg    config.Config
	format rowtable.Format
	opts   rowtable.Options
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
}

// New builds an App from a validated configuration. Diagnostics go to logW.
func New(cfg config.Config, stdin io.Reader, stdout, logW io.Writer) (*App, error) {
	format, opts, err := cfg.Render()
	if err != nil {
		return nil, err
	}
	logger := NewLogger(cfg.Logging.Level, cfg.Logging.Format, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.Logging.Level)
	return &App{
		cfg:    cfg,
		format: format,
		opts:   opts,
		stdin:  stdin,
		stdout: stdout,
		logger: logger,
	}, nil
}

// Run processes every input in order and stops at the first failure.
// Standard input is read only when no files are configured.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("Run started.", "inputs", len(a.cfg.Inputs), "nrows", a.cfg.NRows, "format", a.format)
	if len(a.cfg.Inputs) == 0 {
		if !a.cfg.Stdin {
			return nil
		}
		return a.toStdout(ctx, "<stdin>", a.stdin)
	}
	for _, path := range a.cfg.Inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.processFile(ctx, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	a.logger.Debug("Run finished.")
	return nil
}

func (a *App) processFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if a.cfg.OutFnFmt == "" {
		return a.toStdout(ctx, path, f)
	}
	dest, err := outpath.Expand(a.cfg.OutFnFmt, path)
	if err != nil {
		return err
	}
	var rows int
	err = writeFileAtomic(dest, func(w io.Writer) error {
		var terr error
		rows, terr = a.transform(ctx, f, w)
		return terr
	})
	if err != nil {
		return err
	}
	a.logger.Info("Input processed.", "input", path, "output", dest, "rows", rows)
	return nil
}

// toStdout renders one input into memory and writes it to stdout only once
// the whole input was read, so a read error produces no output.
func (a *App) toStdout(ctx context.Context, name string, r io.Reader) error {
	var buf bytes.Buffer
	rows, err := a.transform(ctx, r, &buf)
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(a.stdout); err != nil {
		return err
	}
	a.logger.Info("Input processed.", "input", name, "output", "<stdout>", "rows", rows)
	return nil
}

// transform groups the lines of r and renders the rows to w. It returns the
// number of rows written.
func (a *App) transform(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	src := rowtable.NewLineSource(r)
	rows, err := rowtable.Group(src.All(), a.cfg.NRows)
	if err != nil {
		return 0, err
	}
	var n int
	if err := rowtable.WriteIter(w, a.format, a.opts, counted(ctx, rows, &n)); err != nil {
		return n, err
	}
	if err := ctx.Err(); err != nil {
		return n, err
	}
	if err := src.Err(); err != nil {
		return n, fmt.Errorf("read: %w", err)
	}
	return n, nil
}

// counted passes rows through, counting them and stopping early when ctx
// is done.
func counted(ctx context.Context, seq iter.Seq[rowtable.Row], n *int) iter.Seq[rowtable.Row] {
	return func(yield func(rowtable.Row) bool) {
		for row := range seq {
			if ctx.Err() != nil {
				return
			}
			*n++
			if !yield(row) {
				return
			}
		}
	}
}
