package file

import (
	"fmt"
	"os"
)

// WriteText writes content to path, creating or truncating the file.
func WriteText(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
