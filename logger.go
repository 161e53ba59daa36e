package misgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewConsoleLogger returns a zerolog logger that renders one plain line per
// event, "[Info] message key=value", without timestamps or colors.
func NewConsoleLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel:  formatLevel,
	}

	return zerolog.New(cw).Level(level)
}

// formatLevel maps "info" to "[Info]", "warn" to "[Warn]" and so on.
func formatLevel(i interface{}) string {
	s, ok := i.(string)
	if !ok || s == "" {
		return "[?]"
	}

	return fmt.Sprintf("[%s%s]", strings.ToUpper(s[:1]), s[1:])
}
