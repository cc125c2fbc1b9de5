package rowtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidGroupSize  = errors.New("group size must be a positive integer")
	ErrInvalidEscape     = errors.New("invalid escape sequence")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedBorder = errors.New("unsupported border style")
	ErrMissingHeader     = errors.New("missing header")
	ErrHeaderWidth       = errors.New("header width does not match row width")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Plain    Format = "plain"
	TSV      Format = "tsv"
	CSV      Format = "csv"
	Table    Format = "table"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	ENV      Format = "env"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Plain, TSV, CSV, Table, Markdown, HTML, JSON, JSONL, YAML, ENV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders rows using a Go text/template.
// Each row is executed against the template and written on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings. The empty string selects [Plain].
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Plain, nil
	}
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// NeedsHeader reports whether format f cannot render without column names.
func NeedsHeader(f Format) bool {
	return f == Markdown || f == ENV
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border style name. The empty string selects
// [BorderRounded].
func ParseBorder(s string) (BorderStyle, error) {
	if s == "" {
		return BorderRounded, nil
	}
	b, ok := borderNames[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
	}
	return b, nil
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// DefaultSep is the separator used by the command line when none is given.
const DefaultSep = "\t"

// Options controls how rows are rendered. The zero value renders plain rows
// joined with no separator; most callers set Sep.
type Options struct {
	// Sep joins the fields of a row in Plain format.
	Sep string
	// Header names the columns. Its length must equal the row width.
	// Required by Markdown and ENV.
	Header []string

	// Table only.
	Title        string
	Border       BorderStyle
	Numbered     bool
	NumberHeader string
	// MaxWidths truncates cells with "..."; zero means no limit.
	MaxWidths []int
	// WrapWidths wraps cells onto several lines; zero means no wrapping.
	WrapWidths []int

	// Alignments is used by Table, Markdown and HTML. Missing entries are
	// AlignLeft.
	Alignments []Alignment

	// Delimiter is the CSV field delimiter. Zero means comma.
	Delimiter rune
	// Indent is the JSON/JSONL indent string and, by length, the YAML indent.
	Indent string

	// Export prefixes ENV lines with "export ".
	Export bool
	// Quote wraps ENV values in double quotes.
	Quote bool
}

// Write formats rows and writes to w.
func Write(w io.Writer, f Format, opts Options, rows ...Row) error {
	return WriteIter(w, f, opts, slices.Values(rows))
}

// Marshal formats rows and returns the bytes.
func Marshal(f Format, opts Options, rows ...Row) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, opts, rows...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func checkWidth(opts Options, row Row) error {
	if len(opts.Header) > 0 && len(row) != len(opts.Header) {
		return fmt.Errorf("%w: header has %d columns, row has %d", ErrHeaderWidth, len(opts.Header), len(row))
	}
	return nil
}

func checkWidths(opts Options, rows []Row) error {
	for _, row := range rows {
		if err := checkWidth(opts, row); err != nil {
			return err
		}
	}
	return nil
}

func requireHeader(f Format, opts Options) error {
	if len(opts.Header) == 0 {
		return fmt.Errorf("%w: format %q requires column names", ErrMissingHeader, f)
	}
	return nil
}
