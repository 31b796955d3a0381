package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultLogfileGlob matches TeamViewer's rotated program log pair
// (current and _OLD).
const DefaultLogfileGlob = "*Logfile*.log"

// Discover lists the files in dir whose names match the glob pattern,
// deduplicated and sorted for deterministic ordering. Subdirectories are
// not descended into; the rotated log pair sits flat in the program
// directory.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultLogfileGlob
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading log directory: %w", err)
	}

	seen := make(map[string]bool)
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		if !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}
