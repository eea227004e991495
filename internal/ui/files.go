package ui

import (
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile is a descriptor ready to be written.
type GeneratedFile struct {
	// Filename is relative to the output directory, e.g. "AccountPresentation.json".
	Filename string
	Content  []byte
}

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return &OutputError{Path: outputDir, Err: err}
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return &OutputError{Path: outputPath, Err: err}
		}
	}

	return nil
}
