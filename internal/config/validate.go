package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bjaus/rowtable"
	"github.com/bjaus/rowtable/internal/outpath"
)

// ErrInvalid marks a configuration problem other than the group size.
var ErrInvalid = errors.New("invalid configuration")

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate reports every problem in c. It runs before any input is opened,
// so a bad configuration never produces partial output.
func Validate(c Config) error {
	var errs []error
	if c.NRows < 1 {
		errs = append(errs, fmt.Errorf("nrows %d: %w", c.NRows, rowtable.ErrInvalidGroupSize))
	}
	if _, err := c.Separator(); err != nil {
		errs = append(errs, fmt.Errorf("sep: %w", err))
	}
	f, err := rowtable.ParseFormat(c.Format)
	if err != nil {
		errs = append(errs, err)
	} else if rowtable.NeedsHeader(f) && len(c.Header) == 0 {
		errs = append(errs, fmt.Errorf("%w: format %q", rowtable.ErrMissingHeader, f))
	}
	if len(c.Header) > 0 && c.NRows >= 1 && len(c.Header) != c.NRows {
		errs = append(errs, fmt.Errorf("%w: %d names for %d rows per group", rowtable.ErrHeaderWidth, len(c.Header), c.NRows))
	}
	if _, err := rowtable.ParseBorder(c.Border); err != nil {
		errs = append(errs, err)
	}
	if c.MaxWidth < 0 {
		errs = append(errs, fmt.Errorf("%w: max width %d is negative", ErrInvalid, c.MaxWidth))
	}
	if c.Wrap < 0 {
		errs = append(errs, fmt.Errorf("%w: wrap width %d is negative", ErrInvalid, c.Wrap))
	}
	if c.OutFnFmt != "" {
		if err := outpath.Validate(c.OutFnFmt); err != nil {
			errs = append(errs, err)
		}
	}
	if !slices.Contains(logLevels, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("%w: log level %q, want one of %s", ErrInvalid, c.Logging.Level, strings.Join(logLevels, ", ")))
	}
	if !slices.Contains(logFormats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("%w: log format %q, want one of %s", ErrInvalid, c.Logging.Format, strings.Join(logFormats, ", ")))
	}
	return errors.Join(errs...)
}

// Separator returns the separator to join fields with, escape-decoded when
// Escape is set and Sep contains a backslash.
func (c Config) Separator() (string, error) {
	if !c.Escape || !strings.Contains(c.Sep, `\`) {
		return c.Sep, nil
	}
	return rowtable.DecodeSeparator(c.Sep)
}

// Render returns the output format and rendering options for c. c must have
// passed [Validate].
func (c Config) Render() (rowtable.Format, rowtable.Options, error) {
	f, err := rowtable.ParseFormat(c.Format)
	if err != nil {
		return "", rowtable.Options{}, err
	}
	sep, err := c.Separator()
	if err != nil {
		return "", rowtable.Options{}, err
	}
	border, err := rowtable.ParseBorder(c.Border)
	if err != nil {
		return "", rowtable.Options{}, err
	}
	opts := rowtable.Options{
		Sep:          sep,
		Header:       cloneStrings(c.Header),
		Title:        c.Title,
		Border:       border,
		Numbered:     c.Number,
		NumberHeader: "#",
	}
	if c.MaxWidth > 0 {
		opts.MaxWidths = repeat(c.MaxWidth, c.NRows)
	}
	if c.Wrap > 0 {
		opts.WrapWidths = repeat(c.Wrap, c.NRows)
	}
	return f, opts, nil
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
