package testhelper

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestYAML(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name: "tab indented",
			src: `
		generation:
			runtime_package: rt
		session:
			time_zone: UTC
		`,
			expected: "generation:\n  runtime_package: rt\nsession:\n  time_zone: UTC\n",
		},
		{
			name:     "already flat",
			src:      "rules:\n  restrictions: []",
			expected: "rules:\n  restrictions: []",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YAML(t, tt.src))
		})
	}
}
