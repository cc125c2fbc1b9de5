package rowtable

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

func streamTSV(w io.Writer, opts Options, seq iter.Seq[Row]) error {
	return eachRow(seq, func(i int, row Row) error {
		if err := checkWidth(opts, row); err != nil {
			return err
		}
		if i == 0 && len(opts.Header) > 0 {
			if _, err := fmt.Fprintln(w, strings.Join(opts.Header, "\t")); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, strings.Join(row, "\t"))
		return err
	})
}
