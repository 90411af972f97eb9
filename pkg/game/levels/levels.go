// Package levels supplies the built-in level layouts and loads
// external ones from disk.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

//go:embed data/*.txt
var builtin embed.FS

// Load returns the layout rows for the named built-in level.
func Load(name string) ([]string, error) {
	b, err := builtin.ReadFile("data/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("unknown built-in level %q", name)
	}
	return toRows(string(b)), nil
}

// LoadFile reads a layout from a file on disk.
func LoadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	return toRows(string(b)), nil
}

// Names lists the built-in level names, sorted.
func Names() []string {
	entries, err := fs.ReadDir(builtin, "data")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// toRows splits layout text into rows, dropping trailing blank lines.
// Interior short rows are kept as-is; the parser pads them with wall.
func toRows(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	rows := strings.Split(s, "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}
