package rowtable

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// WriteIter formats rows from an iterator and writes them to w as they
// arrive. For formats where rows are independent (Plain, TSV, CSV, JSONL,
// ENV, GoTemplate), each row is written immediately. For JSON, rows are
// streamed as array elements. For formats that need all data for layout
// (Table, Markdown, HTML) and for YAML, rows are collected into a slice first.
func WriteIter(w io.Writer, f Format, opts Options, seq iter.Seq[Row]) error {
	switch f {
	case Plain:
		return streamPlain(w, opts, seq)
	case TSV:
		return streamTSV(w, opts, seq)
	case CSV:
		return streamCSV(w, opts, seq)
	case JSON:
		return streamJSON(w, opts, seq)
	case JSONL:
		return streamJSONL(w, opts, seq)
	case ENV:
		return streamENV(w, opts, seq)
	case Table, Markdown, HTML, YAML:
		return streamCollect(w, f, opts, seq)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return streamGoTemplate(w, tmpl, opts, seq)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan formats rows from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, opts Options, ch <-chan Row) error {
	return WriteIter(w, f, opts, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamCollect(w io.Writer, f Format, opts Options, seq iter.Seq[Row]) error {
	var rows []Row
	for row := range seq {
		rows = append(rows, row)
	}
	if err := checkWidths(opts, rows); err != nil {
		return err
	}
	switch f {
	case Table:
		return writeTable(w, opts, rows)
	case Markdown:
		return writeMarkdown(w, opts, rows)
	case HTML:
		return writeHTML(w, opts, rows)
	default:
		return writeYAML(w, opts, rows)
	}
}

// eachRow ranges over seq, stopping at the first error from fn.
func eachRow(seq iter.Seq[Row], fn func(i int, row Row) error) error {
	i := 0
	for row := range seq {
		if err := fn(i, row); err != nil {
			return err
		}
		i++
	}
	return nil
}
