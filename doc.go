// Package rowtable regroups a flat sequence of lines into fixed-width rows and
// renders those rows in multiple output formats.
//
// # Grouping
//
// [Group] partitions a line sequence into consecutive rows of exactly N
// values, in input order. When the input ends part way through a row, the
// trailing positions of that final row hold [Fill] (the empty string). Empty
// input produces no rows:
//
//	rows, err := rowtable.GroupSlice([]string{"a", "b", "c", "d", "e"}, 2)
//	// [a b] [c d] [e ""]
//
// Group is lazy and single pass. It returns [ErrInvalidGroupSize] before
// reading anything when N is less than 1.
//
// [LineSource] turns an [io.Reader] into the stripped line sequence Group
// consumes. Surrounding whitespace is removed from each line; empty lines are
// kept as values.
//
// # Separators
//
// [DecodeSeparator] interprets backslash escapes so that a command-line
// argument of `\t` becomes a tab. Unknown escapes are kept as written; a
// trailing lone backslash fails with [ErrInvalidEscape].
//
// # Formats
//
// [Write], [WriteIter] and [Marshal] render rows. [Plain] joins each row with
// [Options].Sep, one row per line. Other formats:
//
//   - [TSV], [CSV]: optional header line; CSV honours [Options].Delimiter
//   - [Table]: bordered or plain table with title, header, row numbers,
//     alignment, truncation and wrapping
//   - [Markdown]: GitHub table, requires a header
//   - [HTML]: <table> with escaped cells
//   - [JSON], [JSONL], [YAML]: arrays of values, or ordered objects when a
//     header is set
//   - [ENV]: KEY=value lines, requires a header
//   - [GoTemplate]: a text/template executed per row against [TemplateRow]
//
// Use [ParseFormat] to convert a flag value into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidGroupSize]: N less than 1
//   - [ErrInvalidEscape]: malformed separator escape
//   - [ErrUnsupportedFormat], [ErrUnsupportedBorder]: unknown names
//   - [ErrMissingHeader]: format needs column names
//   - [ErrHeaderWidth]: header length differs from row width
//   - [ErrInvalidTemplate]: invalid go-template syntax
package rowtable
