package pipeline

import (
	"fmt"
	"io"
	"os"

	"jdl-generator/internal/common"
)

// Source is a named input stream opened on demand.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource reads the file at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("opening %s: %w: %w", path, common.ErrInputIO, err)
			}

			return f, nil
		},
	}
}

// ReaderSource wraps an already open reader. Closing it is left to the caller.
func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
	}
}

// FileSources returns a FileSource per path.
func FileSources(paths []string) []Source {
	out := make([]Source, 0, len(paths))
	for _, p := range paths {
		out = append(out, FileSource(p))
	}

	return out
}
