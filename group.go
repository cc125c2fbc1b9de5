package rowtable

import (
	"fmt"
	"iter"
	"slices"
)

// Fill is the value used for the missing fields of a final, incomplete row.
const Fill = ""

// Group returns an iterator over consecutive rows of exactly n lines from
// seq. When seq ends part way through a row, the remaining positions of that
// row are set to [Fill]. An empty seq yields no rows.
//
// The returned sequence consumes seq once and holds at most n values at a
// time; it cannot be restarted. Group fails with [ErrInvalidGroupSize] before
// touching seq when n is less than 1.
func Group(seq iter.Seq[string], n int) (iter.Seq[Row], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGroupSize, n)
	}
	return func(yield func(Row) bool) {
		var row Row
		for line := range seq {
			if row == nil {
				row = make(Row, 0, n)
			}
			row = append(row, line)
			if len(row) == n {
				if !yield(row) {
					return
				}
				row = nil
			}
		}
		if len(row) == 0 {
			return
		}
		for len(row) < n {
			row = append(row, Fill)
		}
		yield(row)
	}, nil
}

// GroupSlice groups lines into rows of n and collects them.
func GroupSlice(lines []string, n int) ([]Row, error) {
	seq, err := Group(slices.Values(lines), n)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}
