package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var leadingTabs = regexp.MustCompile(`^\t+`)

// YAML dedents an indented raw string literal so it can be written as a YAML
// document. The first line (normally empty) is dropped, the indentation of the
// least indented line is removed and remaining leading tabs become two spaces.
func YAML(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || width < indent {
			indent = width
		}
	}

	for i, line := range lines {
		switch {
		case indent <= 0:
		case len(line) >= indent:
			line = line[indent:]
		default:
			line = strings.TrimLeft(line, " \t")
		}

		lines[i] = leadingTabs.ReplaceAllStringFunc(line, func(tabs string) string {
			return strings.Repeat("  ", len(tabs))
		})
	}

	return strings.Join(lines, "\n")
}
