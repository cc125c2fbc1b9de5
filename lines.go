package rowtable

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"math"
	"strings"
)

// LineSource reads text and yields each line with its surrounding whitespace
// removed. A line ends at "\n", "\r\n" or a lone "\r". Empty lines are
// yielded as empty strings.
//
// Like [bufio.Scanner], a LineSource is read once. Check [LineSource.Err]
// after ranging over [LineSource.All].
type LineSource struct {
	sc  *bufio.Scanner
	err error
}

// LineOption configures a [LineSource].
type LineOption func(*bufio.Scanner)

// WithMaxLineSize sets the longest line accepted. Longer lines stop the
// source and are reported by [LineSource.Err]. Lines are unbounded by
// default.
func WithMaxLineSize(n int) LineOption {
	return func(sc *bufio.Scanner) {
		initial := 64 * 1024
		if n < initial {
			initial = n
		}
		sc.Buffer(make([]byte, 0, initial), n)
	}
}

// NewLineSource returns a LineSource reading from r.
func NewLineSource(r io.Reader, opts ...LineOption) *LineSource {
	sc := bufio.NewScanner(r)
	sc.Split(scanLines)
	WithMaxLineSize(math.MaxInt)(sc)
	for _, opt := range opts {
		opt(sc)
	}
	return &LineSource{sc: sc}
}

// All returns an iterator over the stripped lines.
func (s *LineSource) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.sc.Scan() {
			if !yield(strings.TrimSpace(s.sc.Text())) {
				return
			}
		}
		s.err = s.sc.Err()
	}
}

// Err returns the first read error, if any.
func (s *LineSource) Err() error { return s.err }

// scanLines is [bufio.ScanLines] with a lone '\r' also ending a line.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// A '\r' at the end of the buffer may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
