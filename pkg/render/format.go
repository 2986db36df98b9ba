package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

// Output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name against a list of supported formats.
func ParseFormat(name string, supported ...Format) (Format, error) {
	for _, format := range supported {
		if Format(name) == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q, expected one of %v", name, supported)
}

// WriteRecord writes a single record in the given format.
func WriteRecord(w io.Writer, format Format, record *Record, maxCellWidth int) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(object(record.Columns, record.Values))
	case FormatYAML:
		return writeYAML(w, objectNode(record.Columns, record.Values))
	default:
		Table(w, record.Rows(), maxCellWidth)
		return nil
	}
}

// WriteRows writes rows in the given format. In JSON and YAML, rows are written as a list of objects.
//
// JSON is streamed row by row, YAML requires the whole list to be built first.
func WriteRows(w io.Writer, format Format, rows *Rows, maxCellWidth int) error {
	switch format {
	case FormatJSON:
		return writeJSONRows(w, rows)
	case FormatYAML:
		list := &yaml.Node{Kind: yaml.SequenceNode}
		for rows.Next() {
			list.Content = append(list.Content, objectNode(rows.Columns(), rows.Row()))
		}
		return writeYAML(w, list)
	default:
		Table(w, rows, maxCellWidth)
		return nil
	}
}

func writeJSONRows(w io.Writer, rows *Rows) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	for rows.Next() {
		b, err := json.MarshalIndent(object(rows.Columns(), rows.Row()), "    ", "    ")
		if err != nil {
			return err
		}
		sep := ",\n    "
		if first {
			sep = "\n    "
			first = false
		}
		if _, err := io.WriteString(w, sep+string(b)); err != nil {
			return err
		}
	}
	end := "\n]\n"
	if first {
		end = "]\n"
	}
	_, err := io.WriteString(w, end)
	return err
}

func writeYAML(w io.Writer, node *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

// orderedObject is a JSON object whose keys keep the columns order.
type orderedObject struct {
	keys   []string
	values []interface{}
}

func object(columns []string, values []interface{}) *orderedObject {
	return &orderedObject{keys: columns, values: values}
}

// MarshalJSON encodes the object, keys are kept in order.
func (o *orderedObject) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, key := range o.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// objectNode builds a YAML mapping whose keys keep the columns order.
func objectNode(columns []string, values []interface{}) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, col := range columns {
		valNode := &yaml.Node{}
		if err := valNode.Encode(values[i]); err != nil {
			valNode = &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%v", values[i])}
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: col},
			valNode,
		)
	}
	return node
}
