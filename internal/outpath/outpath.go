// Package outpath computes per-input output file names from a template.
package outpath

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrBadTemplate reports a template with an unknown field or unbalanced brace.
var ErrBadTemplate = errors.New("bad output file name template")

// Fields are the values a template may reference, derived from an input path.
type Fields struct {
	// Basename is the last element of the path, e.g. "data.txt".
	Basename string
	// Ext is the extension of Basename including the dot, e.g. ".txt".
	Ext string
	// FnRoot is Basename without Ext, e.g. "data".
	FnRoot string
	// Dirname is the directory of the absolute input path.
	Dirname string
}

// FieldsOf derives template fields from inputPath.
func FieldsOf(inputPath string) (Fields, error) {
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		return Fields{}, err
	}
	base := filepath.Base(inputPath)
	ext := extension(base)
	return Fields{
		Basename: base,
		Ext:      ext,
		FnRoot:   strings.TrimSuffix(base, ext),
		Dirname:  filepath.Dir(abs),
	}, nil
}

// extension ignores leading dots, so ".bashrc" has no extension.
func extension(base string) string {
	trimmed := strings.TrimLeft(base, ".")
	i := strings.LastIndexByte(trimmed, '.')
	if i < 0 {
		return ""
	}
	return trimmed[i:]
}

func (f Fields) lookup(name string) (string, bool) {
	switch name {
	case "fnroot":
		return f.FnRoot, true
	case "ext":
		return f.Ext, true
	case "basename":
		return f.Basename, true
	case "dirname":
		return f.Dirname, true
	default:
		return "", false
	}
}

// Expand substitutes {fnroot}, {ext}, {basename} and {dirname} in tmpl with
// values derived from inputPath. "{{" and "}}" stand for literal braces.
func Expand(tmpl, inputPath string) (string, error) {
	fields, err := FieldsOf(inputPath)
	if err != nil {
		return "", err
	}
	return fields.Expand(tmpl)
}

// Expand substitutes fields into tmpl.
func (f Fields) Expand(tmpl string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			sb.WriteByte('{')
			i++
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			sb.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed '{' in %q", ErrBadTemplate, tmpl)
			}
			name := tmpl[i+1 : i+1+end]
			v, ok := f.lookup(name)
			if !ok {
				return "", fmt.Errorf("%w: unknown field {%s} in %q", ErrBadTemplate, name, tmpl)
			}
			sb.WriteString(v)
			i += end + 1
		case c == '}':
			return "", fmt.Errorf("%w: single '}' in %q", ErrBadTemplate, tmpl)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}

// Validate checks tmpl without an input path.
func Validate(tmpl string) error {
	_, err := Fields{}.Expand(tmpl)
	return err
}
