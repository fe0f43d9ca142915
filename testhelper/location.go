package testhelper

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
)

// Caller returns " (file.go:line)" for the line calling it. Appending it to a
// table entry name makes failing cases easy to find.
func Caller(t *testing.T) string {
	t.Helper()

	if _, file, line, ok := runtime.Caller(1); ok {
		return fmt.Sprintf(" (%s:%d)", filepath.Base(file), line)
	}

	return ""
}
