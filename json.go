package rowtable

import (
	"bytes"
	"encoding/json"
	"io"
	"iter"
)

// record is a row keyed by header names. It marshals as a JSON object whose
// keys keep header order.
type record struct {
	keys   []string
	values Row
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalNoEscape(k)
		if err != nil {
			return nil, err
		}
		vb, err := marshalNoEscape(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// jsonValue returns the value encoded for row: an object when a header is
// set, otherwise an array of strings.
func jsonValue(opts Options, row Row) any {
	if len(opts.Header) > 0 {
		return record{keys: opts.Header, values: row}
	}
	return []string(row)
}

func newJSONEncoder(w io.Writer, opts Options) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}
	return enc
}

func streamJSON(w io.Writer, opts Options, seq iter.Seq[Row]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	enc := newJSONEncoder(w, opts)
	err := eachRow(seq, func(i int, row Row) error {
		if err := checkWidth(opts, row); err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		return enc.Encode(jsonValue(opts, row))
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "]\n")
	return err
}
