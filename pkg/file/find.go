package file

import (
	"os"
	"sort"
)

// ListNames returns the names (not paths) of the regular files in dir,
// sorted lexically so callers see a stable ordering.
func ListNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}
