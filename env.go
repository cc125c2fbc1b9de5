package rowtable

import (
	"fmt"
	"io"
	"iter"
)

// streamENV writes one KEY=value line per column, with a blank line between
// rows. Keys come from opts.Header.
func streamENV(w io.Writer, opts Options, seq iter.Seq[Row]) error {
	if err := requireHeader(ENV, opts); err != nil {
		return err
	}
	prefix := ""
	if opts.Export {
		prefix = "export "
	}
	return eachRow(seq, func(i int, row Row) error {
		if err := checkWidth(opts, row); err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for j, key := range opts.Header {
			var err error
			if opts.Quote {
				_, err = fmt.Fprintf(w, "%s%s=%q\n", prefix, key, row[j])
			} else {
				_, err = fmt.Fprintf(w, "%s%s=%s\n", prefix, key, row[j])
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
