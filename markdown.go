package rowtable

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func writeMarkdown(w io.Writer, opts Options, rows []Row) error {
	if err := requireHeader(Markdown, opts); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	header := opts.Header
	numCols := len(header)

	// Column widths, minimum 3 for alignment markers.
	widths := make([]int, numCols)
	for i, col := range header {
		widths[i] = runewidth.StringWidth(markdownCell(col))
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(markdownCell(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	aligns := extendAligns(opts.Alignments, numCols)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

// markdownCell escapes pipes so a value cannot split its cell.
func markdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(markdownCell(cells[i]), width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
