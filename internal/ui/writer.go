package ui

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"

	"jdl-generator/internal/config"
	"jdl-generator/internal/logger"
	"jdl-generator/internal/model"
)

// Writer renders parent entities into projection descriptors.
type Writer struct {
	registry string
	actions  []config.Action
	log      *slog.Logger
}

// NewWriter creates a Writer for the configured registry and actions.
func NewWriter(cfg config.UI, log *slog.Logger) *Writer {
	return &Writer{
		registry: cfg.Registry,
		actions:  cfg.Actions,
		log:      logger.OrDiscard(log),
	}
}

// Render builds the descriptor files for parents, sorted by parent code.
func (w *Writer) Render(parents model.ParentEntityFields) ([]GeneratedFile, error) {
	codes := slices.Sorted(maps.Keys(parents))
	files := make([]GeneratedFile, 0, 2*len(codes))

	for _, code := range codes {
		if !filepath.IsLocal(code) || filepath.Base(code) != code {
			return nil, fmt.Errorf("parent code %q is not usable as a file name", code)
		}

		item := CreatePresentationFor(code, w.registry)
		projection := ToProjectionInfo(code, parents[code], w.actions, item.Code)

		itemFile, err := jsonFile(item.Code+".json", item)
		if err != nil {
			return nil, err
		}

		projectionFile, err := jsonFile(code+".json", projection)
		if err != nil {
			return nil, err
		}

		files = append(files, itemFile, projectionFile)
	}

	return files, nil
}

// Write empties dir and writes the descriptors of parents into it.
// It returns the number of files written.
func (w *Writer) Write(dir string, parents model.ParentEntityFields) (int, error) {
	files, err := w.Render(parents)
	if err != nil {
		return 0, err
	}

	if err := CleanupTargetDirectory(dir); err != nil {
		return 0, err
	}

	if err := WriteFiles(files, dir); err != nil {
		return 0, err
	}

	w.log.Info("ui descriptors written", "dir", dir, "files", len(files))

	return len(files), nil
}

func jsonFile(name string, v any) (GeneratedFile, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("encoding %s: %w", name, err)
	}

	return GeneratedFile{Filename: name, Content: append(data, '\n')}, nil
}
