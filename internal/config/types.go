// Package config holds the settings for one rowtable invocation and the
// layering that produces them: defaults, a YAML file, the environment and
// command-line flags, in increasing precedence.
package config

import "github.com/bjaus/rowtable"

// Config is the final, validated configuration for one invocation. It is
// treated as immutable once built; layers are applied with [Config.Apply].
type Config struct {
	// Inputs are the files to process, in order.
	Inputs []string
	// Stdin reads standard input when Inputs is empty.
	Stdin bool

	// NRows is the group size N.
	NRows int
	// Sep joins the fields of a row. See Escape.
	Sep string
	// Escape decodes backslash escapes in Sep before use.
	Escape bool
	// OutFnFmt, when set, names a per-input output file instead of stdout.
	OutFnFmt string

	Format   string
	Header   []string
	Title    string
	Border   string
	Number   bool
	MaxWidth int
	Wrap     int

	Logging Logging
}

// Logging configures the diagnostic logger on stderr.
type Logging struct {
	Level  string
	Format string
}

// Overlay is one configuration layer. Nil fields leave the value below
// unchanged, so an explicit zero (an empty separator, escaping off) can
// still override a default.
type Overlay struct {
	NRows    *int     `yaml:"nrows"`
	Sep      *string  `yaml:"sep"`
	Escape   *bool    `yaml:"escape"`
	OutFnFmt *string  `yaml:"outfnfmt"`
	Format   *string  `yaml:"format"`
	Header   []string `yaml:"header"`
	Title    *string  `yaml:"title"`
	Border   *string  `yaml:"border"`
	Number   *bool    `yaml:"number"`
	MaxWidth *int     `yaml:"max_width"`
	Wrap     *int     `yaml:"wrap"`

	Logging struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"logging"`
}

// Defaults returns the configuration used when nothing else is given.
func Defaults() Config {
	return Config{
		NRows:  2,
		Sep:    rowtable.DefaultSep,
		Escape: true,
		Format: rowtable.Plain.String(),
		Border: "rounded",
		Logging: Logging{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Apply returns c with every set field of o replacing its counterpart.
func (c Config) Apply(o Overlay) Config {
	out := c
	out.Inputs = cloneStrings(c.Inputs)
	out.Header = cloneStrings(c.Header)
	setIf(&out.NRows, o.NRows)
	setIf(&out.Sep, o.Sep)
	setIf(&out.Escape, o.Escape)
	setIf(&out.OutFnFmt, o.OutFnFmt)
	setIf(&out.Format, o.Format)
	if len(o.Header) > 0 {
		out.Header = cloneStrings(o.Header)
	}
	setIf(&out.Title, o.Title)
	setIf(&out.Border, o.Border)
	setIf(&out.Number, o.Number)
	setIf(&out.MaxWidth, o.MaxWidth)
	setIf(&out.Wrap, o.Wrap)
	setIf(&out.Logging.Level, o.Logging.Level)
	setIf(&out.Logging.Format, o.Logging.Format)
	return out
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
