package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("yaml", FormatTable, FormatJSON, FormatYAML)
	require.NoError(t, err)
	require.Equal(t, FormatYAML, format)

	_, err = ParseFormat("yaml", FormatTable, FormatJSON)
	require.EqualError(t, err, `unsupported output format "yaml", expected one of [table json]`)
}

func TestWriteRecordTable(t *testing.T) {
	var out bytes.Buffer
	record := NewRecord(
		[]string{"id", "name", "inputs"},
		[]interface{}{"1234", "deploy", []interface{}{}},
	)
	require.NoError(t, WriteRecord(&out, FormatTable, record, 0))

	var exp bytes.Buffer
	table := NewTable(&exp, []string{"ID", "NAME", "INPUTS"})
	table.Append([]string{"1234", "deploy", "[]"})
	table.Render()

	require.Equal(t, exp.String(), out.String())
}

func TestWriteRecordJSON(t *testing.T) {
	var out bytes.Buffer
	record := NewRecord(
		[]string{"name", "id", "options"},
		[]interface{}{"deploy", "1234", map[string]interface{}{}},
	)
	require.NoError(t, WriteRecord(&out, FormatJSON, record, 0))

	// Keys are kept in the record order.
	require.Equal(t, `{
    "name": "deploy",
    "id": "1234",
    "options": {}
}
`, out.String())
}

func TestWriteRecordYAML(t *testing.T) {
	var out bytes.Buffer
	record := NewRecord(
		[]string{"name", "id", "inputs", "config"},
		[]interface{}{"deploy", "1234", []interface{}{}, "#!/bin/sh\necho hi\n"},
	)
	require.NoError(t, WriteRecord(&out, FormatYAML, record, 0))

	require.Equal(t, `name: deploy
id: "1234"
inputs: []
config: |
  #!/bin/sh
  echo hi
`, out.String())
}

func TestWriteRowsJSON(t *testing.T) {
	var out bytes.Buffer
	rows := SliceRows([]string{"id", "name"}, [][]interface{}{
		{"1", "a"},
		{"2", "b"},
	})
	require.NoError(t, WriteRows(&out, FormatJSON, rows, 0))

	require.Equal(t, `[
    {
        "id": "1",
        "name": "a"
    },
    {
        "id": "2",
        "name": "b"
    }
]
`, out.String())
}

func TestWriteEmptyRowsJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteRows(&out, FormatJSON, SliceRows([]string{"id"}, nil), 0))
	require.Equal(t, "[]\n", out.String())
}

func TestWriteRowsYAML(t *testing.T) {
	var out bytes.Buffer
	rows := SliceRows([]string{"id", "name"}, [][]interface{}{
		{"1", "a"},
	})
	require.NoError(t, WriteRows(&out, FormatYAML, rows, 0))
	require.Equal(t, "- id: \"1\"\n  name: a\n", out.String())
}

func TestWriteRowsTable(t *testing.T) {
	var out bytes.Buffer
	rows := SliceRows([]string{"id", "name", "group", "creation_time"}, [][]interface{}{
		{"1", "a", "script", "2024-01-02T03:04:05Z"},
	})
	require.NoError(t, WriteRows(&out, FormatTable, rows, 0))

	var exp bytes.Buffer
	table := NewTable(&exp, []string{"ID", "NAME", "GROUP", "CREATION_TIME"})
	table.Append([]string{"1", "a", "script", "2024-01-02T03:04:05Z"})
	table.Render()

	require.Equal(t, exp.String(), out.String())
}
