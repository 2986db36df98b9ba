package render

import (
	"encoding/json"
	"fmt"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// FormatCell converts a value into its table cell representation.
//
// Sequences and mappings are displayed as compact JSON. When maxWidth is
// greater than 0, lines wider than maxWidth are truncated.
func FormatCell(val interface{}, maxWidth int) string {
	var s string
	switch v := val.(type) {
	case nil:
		s = ""
	case string:
		s = v
	case []interface{}:
		if v != nil {
			s = jsonCell(v)
		}
	case map[string]interface{}:
		if v != nil {
			s = jsonCell(v)
		}
	default:
		s = fmt.Sprintf("%v", v)
	}
	return truncate(s, maxWidth)
}

func jsonCell(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// truncate shortens a string so that its display width fits into maxWidth, each line is truncated separately.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	var out []rune
	var line []rune
	flush := func() {
		l := string(line)
		if runewidth.StringWidth(l) > maxWidth {
			l = runewidth.Truncate(l, maxWidth, ellipsis)
		}
		out = append(out, []rune(l)...)
		line = line[:0]
	}
	for _, r := range s {
		if r == '\n' {
			flush()
			out = append(out, r)
			continue
		}
		line = append(line, r)
	}
	flush()
	return string(out)
}
