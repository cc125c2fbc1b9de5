package rowtable

import (
	"io"

	"gopkg.in/yaml.v3"
)

// yamlNode builds the document for rows: a sequence of string sequences, or
// of mappings in header order when a header is set.
func yamlNode(opts Options, rows []Row) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, row := range rows {
		var item *yaml.Node
		if len(opts.Header) > 0 {
			item = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for i, key := range opts.Header {
				item.Content = append(item.Content, yamlString(key), yamlString(row[i]))
			}
		} else {
			item = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, cell := range row {
				item.Content = append(item.Content, yamlString(cell))
			}
		}
		seq.Content = append(seq.Content, item)
	}
	return seq
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func writeYAML(w io.Writer, opts Options, rows []Row) error {
	enc := yaml.NewEncoder(w)
	if opts.Indent != "" {
		enc.SetIndent(len(opts.Indent))
	}
	if err := enc.Encode(yamlNode(opts, rows)); err != nil {
		return err
	}
	return enc.Close()
}
