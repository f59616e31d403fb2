package parser

import (
	"strings"
)

type markdownParser struct{}

func (markdownParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown")
}

// Parse normalizes line endings and drops a leading byte order mark. Everything
// else is kept as written; blank lines inside code blocks are content.
func (markdownParser) Parse(content []byte) (string, error) {
	return normalizeNewlines(content), nil
}

func normalizeNewlines(content []byte) string {
	text := strings.TrimPrefix(string(content), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
