package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"jdl-generator/internal/common"
)

// OutputError reports a filesystem failure on a specific path.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() []error {
	return []error{common.ErrOutputIO, e.Err}
}

// CleanupTargetDirectory deletes dir and everything below it. Paths are
// removed in reverse lexical order so children go before their parents.
// A missing dir is not an error.
func CleanupTargetDirectory(dir string) error {
	if _, err := os.Lstat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return &OutputError{Path: dir, Err: err}
	}

	var paths []string

	err := filepath.WalkDir(dir, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return &OutputError{Path: path, Err: err}
		}

		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return err
	}

	slices.Sort(paths)
	slices.Reverse(paths)

	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			return &OutputError{Path: p, Err: err}
		}
	}

	return nil
}
