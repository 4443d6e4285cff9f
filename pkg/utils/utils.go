package utils

import (
	"runtime/debug"
	"strings"
	"unicode"

	"crypto-advisor/pkg/logger"
)

// ToPointer returns a pointer to a copy of v.
func ToPointer[T any](v T) *T {
	return &v
}

// GoSafe runs fn in a goroutine and logs a recovered panic to log.
func GoSafe(log *logger.Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Recovered from panic",
					logger.Field("panic", r),
					logger.StringField("stack", string(debug.Stack())),
				)
			}
		}()
		fn()
	}()
}

// SafeText flattens s to a single line: control characters become spaces and
// whitespace runs collapse to one space.
func SafeText(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(cleaned), " ")
}

// SafeParagraphs cleans each line like SafeText but keeps line breaks.
// Runs of blank lines become a single empty line; leading and trailing blanks are dropped.
func SafeParagraphs(s string) string {
	var (
		out   []string
		blank bool
	)
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = SafeText(line)
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Truncate cuts s to at most max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}
