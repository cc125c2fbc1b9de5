package rowtable

import (
	"io"
	"iter"
)

// streamPlain writes each row joined with opts.Sep on its own line.
func streamPlain(w io.Writer, opts Options, seq iter.Seq[Row]) error {
	return eachRow(seq, func(_ int, row Row) error {
		_, err := io.WriteString(w, row.Join(opts.Sep)+"\n")
		return err
	})
}
