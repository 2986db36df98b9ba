package log

import (
	"bytes"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formatter is a simple formatter for logrus.
//
// Debug and info entries are printed as is, warnings and errors are
// prefixed by their level so that they stand out from regular output.
type Formatter struct{}

// Format returns the log entry message with a trailing newline.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}
	if entry.Level <= logrus.WarnLevel {
		b.WriteString(strings.ToUpper(entry.Level.String()) + ": ")
	}
	b.WriteString(entry.Message + "\n")
	return b.Bytes(), nil
}
