package csvin

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"jdl-generator/internal/common"
	"jdl-generator/internal/config"
)

// Record is one CSV row.
type Record struct {
	Fields []string
	// Index is the 1-based record number.
	Index int
	// Line is the 1-based line the record starts on.
	Line int
	// Offset is the byte offset of the record in the decoded stream.
	Offset int64
}

// Get returns column i, or "" when the row is shorter.
func (r Record) Get(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}

	return r.Fields[i]
}

// FormatError reports broken CSV framing.
type FormatError struct {
	// Offset is the byte offset of the record that failed to parse.
	Offset int64
	Line   int
	Column int
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed CSV at byte %d (line %d, column %d): %v", e.Offset, e.Line, e.Column, e.Err)
}

func (e *FormatError) Unwrap() []error {
	return []error{common.ErrInputFormat, e.Err}
}

// Records returns the records of r decoded with the given encoding.
// Iteration stops after the first error, which is yielded with a zero Record.
func Records(r io.Reader, encoding string) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		src, err := decode(r, encoding)
		if err != nil {
			yield(Record{}, err)
			return
		}

		cr := csv.NewReader(src)
		cr.FieldsPerRecord = -1

		for n := 1; ; n++ {
			start := cr.InputOffset()

			fields, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				yield(Record{}, classify(err, start))
				return
			}

			line, _ := cr.FieldPos(0)

			if !yield(Record{Fields: fields, Index: n, Line: line, Offset: start}, nil) {
				return
			}
		}
	}
}

// ReadAll collects every record of r.
func ReadAll(r io.Reader, encoding string) ([]Record, error) {
	var out []Record

	for rec, err := range Records(r, encoding) {
		if err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	return out, nil
}

func decode(r io.Reader, encoding string) (io.Reader, error) {
	switch encoding {
	case "", config.EncodingUTF8:
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case config.EncodingWindows1251:
		return transform.NewReader(r, charmap.Windows1251.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

func classify(err error, offset int64) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &FormatError{Offset: offset, Line: pe.Line, Column: pe.Column, Err: pe.Err}
	}

	return fmt.Errorf("reading CSV: %w: %w", common.ErrInputIO, err)
}
