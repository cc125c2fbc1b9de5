package rowtable

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// tableLayout is a table after numbering, width measurement and truncation.
type tableLayout struct {
	title      string
	header     []string
	rows       [][]string
	widths     []int
	aligns     []Alignment
	wrapWidths []int
}

func newTableLayout(opts Options, rows []Row) tableLayout {
	t := tableLayout{
		title:      opts.Title,
		header:     opts.Header,
		rows:       make([][]string, len(rows)),
		aligns:     opts.Alignments,
		wrapWidths: opts.WrapWidths,
	}
	for i, row := range rows {
		t.rows[i] = row
	}
	maxWidths := opts.MaxWidths

	if opts.Numbered {
		if len(t.header) > 0 {
			t.header = append([]string{opts.NumberHeader}, t.header...)
		}
		for i, row := range t.rows {
			t.rows[i] = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		t.aligns = append([]Alignment{AlignRight}, t.aligns...)
		if len(t.wrapWidths) > 0 {
			t.wrapWidths = append([]int{0}, t.wrapWidths...)
		}
		if len(maxWidths) > 0 {
			maxWidths = append([]int{0}, maxWidths...)
		}
	}

	numCols := len(t.header)
	for _, row := range t.rows {
		numCols = max(numCols, len(row))
	}
	t.widths = make([]int, numCols)
	measure := func(cells []string) {
		for i, cell := range cells {
			t.widths[i] = max(t.widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	for i, limit := range maxWidths {
		if i < numCols && limit > 0 && t.widths[i] > limit {
			t.widths[i] = limit
		}
	}
	// A wrapped column is no wider than its wrap width.
	for i, ww := range t.wrapWidths {
		if i < numCols && ww > 0 && t.widths[i] > ww {
			t.widths[i] = ww
		}
	}
	t.aligns = extendAligns(t.aligns, numCols)
	return t
}

func writeTable(w io.Writer, opts Options, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	t := newTableLayout(opts, rows)
	if opts.Border == BorderNone {
		return t.renderPlain(w)
	}
	bc, ok := borderSets[opts.Border]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedBorder, opts.Border)
	}
	return t.renderBordered(w, bc)
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

// --- Cell wrapping ---

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if line == "" {
			// A rune wider than width still has to advance.
			r := []rune(s)
			line = string(r[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}

// visualLines splits cells into the physical lines a row occupies.
func (t tableLayout) visualLines(cells []string) [][]string {
	if len(t.wrapWidths) == 0 {
		return [][]string{cells}
	}
	wrapped := make([][]string, len(t.widths))
	n := 1
	for i, width := range t.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		ww := 0
		if i < len(t.wrapWidths) {
			ww = t.wrapWidths[i]
		}
		if ww > 0 {
			wrapped[i] = wrapCell(cell, min(ww, width))
		} else {
			wrapped[i] = []string{cell}
		}
		n = max(n, len(wrapped[i]))
	}
	lines := make([][]string, n)
	for l := range n {
		lines[l] = make([]string, len(t.widths))
		for i := range t.widths {
			if l < len(wrapped[i]) {
				lines[l][i] = wrapped[i][l]
			}
		}
	}
	return lines
}

// cells formats one physical line to column width and alignment.
func (t tableLayout) cells(line []string) []string {
	parts := make([]string, len(t.widths))
	for i, width := range t.widths {
		cell := ""
		if i < len(line) {
			cell = line[i]
		}
		parts[i] = formatTableCell(cell, width, t.aligns[i])
	}
	return parts
}

// --- Plain table (BorderNone) ---

func (t tableLayout) renderPlain(w io.Writer) error {
	writeRow := func(cells []string) error {
		for _, line := range t.visualLines(cells) {
			text := strings.TrimRight(strings.Join(t.cells(line), "  "), " ")
			if _, err := fmt.Fprintln(w, text); err != nil {
				return err
			}
		}
		return nil
	}
	if t.title != "" {
		if _, err := fmt.Fprintln(w, t.title); err != nil {
			return err
		}
	}
	if len(t.header) > 0 {
		if err := writeRow(t.header); err != nil {
			return err
		}
		sep := make([]string, len(t.widths))
		for i, width := range t.widths {
			sep[i] = strings.Repeat("-", width)
		}
		if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// --- Bordered table ---

func (t tableLayout) renderBordered(w io.Writer, bc borderChars) error {
	hline := func(left, mid, right string) error {
		var sb strings.Builder
		sb.WriteString(left)
		for i, width := range t.widths {
			sb.WriteString(strings.Repeat(bc.horizontal, width+2))
			if i < len(t.widths)-1 {
				sb.WriteString(mid)
			}
		}
		sb.WriteString(right)
		_, err := fmt.Fprintln(w, sb.String())
		return err
	}
	writeRow := func(cells []string) error {
		for _, line := range t.visualLines(cells) {
			body := strings.Join(t.cells(line), " "+bc.vertical+" ")
			if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, body, bc.vertical); err != nil {
				return err
			}
		}
		return nil
	}

	if t.title != "" {
		// Full-width top border, then a transition to columns.
		if err := hline(bc.topLeft, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		padded := alignCell(t.title, tableInnerWidth(t.widths)-2, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		if err := hline(bc.leftTee, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else if err := hline(bc.topLeft, bc.topTee, bc.topRight); err != nil {
		return err
	}

	if len(t.header) > 0 {
		if err := writeRow(t.header); err != nil {
			return err
		}
		if err := hline(bc.leftTee, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return hline(bc.bottomLeft, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the width between the outer vertical borders of a
// bordered table: each cell plus one space of padding per side, and one
// border character between cells.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
