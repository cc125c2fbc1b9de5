package rowtable

import "strings"

// Row is one group of N field values. Fill values are empty strings and only
// ever occupy the trailing positions of the final row.
type Row []string

// Join renders the row as its fields separated by sep. No separator is
// written before the first or after the last field.
func (r Row) Join(sep string) string { return strings.Join(r, sep) }

// Width returns the number of fields in the row.
func (r Row) Width() int { return len(r) }
