package assemble

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"jdl-generator/internal/catalog"
	"jdl-generator/internal/config"
	"jdl-generator/internal/csvin"
	"jdl-generator/internal/diagnostic"
	"jdl-generator/internal/logger"
	"jdl-generator/internal/model"
)

// Diagnostic codes reported by the assembler.
const (
	CodeOrphanRow      = "orphan_row"
	CodeMarkerRow      = "marker_row"
	CodeEntityReplaced = "entity_replaced"
)

// Assembler turns CSV records into entities.
type Assembler struct {
	catalog *catalog.Catalog
	columns config.Columns
	marker  string
	log     *slog.Logger
}

// New creates an Assembler reading the given columns. Rows whose class-name
// cell contains marker never start an entity.
func New(cat *catalog.Catalog, columns config.Columns, marker string, log *slog.Logger) *Assembler {
	return &Assembler{
		catalog: cat,
		columns: columns,
		marker:  marker,
		log:     logger.OrDiscard(log),
	}
}

// FromConfig creates an Assembler from a loaded configuration.
func FromConfig(cfg *config.Config, log *slog.Logger) (*Assembler, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("building type catalog: %w", err)
	}

	return New(cat, cfg.Columns, cfg.Markers.NonEntity, log), nil
}

// Result is the outcome of assembling one stream.
type Result struct {
	// Entities in the order their class name first appeared.
	Entities    []model.Entity
	Diagnostics diagnostic.Diagnostics
}

// Assemble consumes records from the stream named source. The first record
// error aborts assembly and is returned as is.
func (a *Assembler) Assemble(source string, records iter.Seq2[csvin.Record, error]) (*Result, error) {
	res := &Result{}

	var (
		order   []string
		byName  = map[string]*model.Entity{}
		current *model.Entity
	)

	for rec, err := range records {
		if err != nil {
			return nil, err
		}

		className := rec.Get(a.columns.ClassName)

		switch {
		case className == "":
			if current == nil {
				res.Diagnostics.Add(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticInfo,
					Code:     CodeOrphanRow,
					Message:  "continuation row before any entity, skipped",
					Source:   source,
					Row:      rec.Line,
				})

				continue
			}

			f, err := a.field(rec)
			if err != nil {
				return nil, err
			}

			current.Fields = append(current.Fields, f)

		case strings.Contains(className, a.marker):
			res.Diagnostics.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticInfo,
				Code:     CodeMarkerRow,
				Message:  fmt.Sprintf("class-name cell contains %q, row does not start an entity", a.marker),
				Source:   source,
				Entity:   className,
				Row:      rec.Line,
			})

		default:
			f, err := a.field(rec)
			if err != nil {
				return nil, err
			}

			if _, seen := byName[className]; seen {
				res.Diagnostics.Add(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticWarning,
					Code:     CodeEntityReplaced,
					Message:  "class redefined, earlier definition discarded",
					Source:   source,
					Entity:   className,
					Row:      rec.Line,
				})
			} else {
				order = append(order, className)
			}

			current = model.NewEntity(className, f)
			byName[className] = current

			a.log.Debug("entity started", "source", source, "entity", className, "line", rec.Line)
		}
	}

	res.Entities = make([]model.Entity, 0, len(order))
	for _, name := range order {
		res.Entities = append(res.Entities, *byName[name])
	}

	return res, nil
}

func (a *Assembler) field(rec csvin.Record) (model.Field, error) {
	raw := rec.Get(a.columns.FieldType)

	fieldType, err := a.catalog.Convert(raw)
	if err != nil {
		return model.Field{}, fmt.Errorf("line %d: %w", rec.Line, err)
	}

	f := model.Field{
		FieldType:   fieldType,
		FieldName:   rec.Get(a.columns.FieldName),
		FieldLength: rec.Get(a.columns.FieldLength),
		IsJdlType:   a.catalog.IsConvertible(raw),
	}

	if a.columns.Label >= 0 {
		f.Label = rec.Get(a.columns.Label)
	}

	return f, nil
}
