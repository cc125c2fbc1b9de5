package rowtable

import (
	"fmt"
	"io"
	"iter"
	"text/template"
)

// TemplateRow is the data a go-template format executes against.
type TemplateRow struct {
	// Index is the zero-based position of the row in the output.
	Index int
	// Fields are the row values in column order.
	Fields []string
	// Cols maps header names to values. Nil without a header.
	Cols map[string]string
}

func newTemplateRow(opts Options, i int, row Row) TemplateRow {
	tr := TemplateRow{Index: i, Fields: row}
	if len(opts.Header) > 0 {
		tr.Cols = make(map[string]string, len(opts.Header))
		for j, key := range opts.Header {
			tr.Cols[key] = row[j]
		}
	}
	return tr
}

func streamGoTemplate(w io.Writer, tmplStr string, opts Options, seq iter.Seq[Row]) error {
	tmpl, err := template.New("row").Option("missingkey=zero").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return eachRow(seq, func(i int, row Row) error {
		if err := checkWidth(opts, row); err != nil {
			return err
		}
		if err := tmpl.Execute(w, newTemplateRow(opts, i, row)); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	})
}
