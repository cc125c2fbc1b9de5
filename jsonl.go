package rowtable

import (
	"io"
	"iter"
)

func streamJSONL(w io.Writer, opts Options, seq iter.Seq[Row]) error {
	enc := newJSONEncoder(w, opts)
	return eachRow(seq, func(_ int, row Row) error {
		if err := checkWidth(opts, row); err != nil {
			return err
		}
		return enc.Encode(jsonValue(opts, row))
	})
}
