package rowtable

import (
	"encoding/csv"
	"io"
	"iter"
)

func streamCSV(w io.Writer, opts Options, seq iter.Seq[Row]) error {
	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}
	err := eachRow(seq, func(i int, row Row) error {
		if err := checkWidth(opts, row); err != nil {
			return err
		}
		if i == 0 && len(opts.Header) > 0 {
			if err := cw.Write(opts.Header); err != nil {
				return err
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		// Flush per row so output keeps pace with a slow source.
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
