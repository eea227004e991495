package jdl

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"text/template"

	"jdl-generator/internal/catalog"
	"jdl-generator/internal/common"
	"jdl-generator/internal/model"
	"jdl-generator/internal/relation"
)

var jdlTemplate = template.Must(template.New("jdl").Parse(
	`{{- range $i, $e := . }}{{ if $i }}
{{ end }}entity {{ $e.Name }} {
{{- range $e.Fields }}
  {{ .Name }} {{ .Type }}{{ if .MaxLength }} maxlength({{ .MaxLength }}){{ end }}
{{- end }}
}
{{ range $e.Relations }}relationship {{ .Type }} { {{ .Ref }} to {{ .Target }} }
{{ end }}{{ end }}`))

type entityData struct {
	Name      string
	Fields    []fieldData
	Relations []relationData
}

type fieldData struct {
	Name      string
	Type      string
	MaxLength string
}

type relationData struct {
	Type   string
	Ref    string
	Target string
}

// Emitter renders JDL text.
type Emitter struct {
	relations *relation.Inferrer
}

// New creates an Emitter. The inferrer resolves relation targets.
func New(relations *relation.Inferrer) *Emitter {
	return &Emitter{relations: relations}
}

// Write renders entities followed by their relations to w.
func (em *Emitter) Write(w io.Writer, entities []model.Entity) error {
	data := make([]entityData, 0, len(entities))

	for i := range entities {
		d, err := em.entityData(&entities[i])
		if err != nil {
			return err
		}

		data = append(data, d)
	}

	return render(w, data)
}

// WriteParents renders one entity per parent code, sorted by code, holding
// the inherited JDL fields.
func (em *Emitter) WriteParents(w io.Writer, parents model.ParentEntityFields) error {
	codes := slices.Sorted(maps.Keys(parents))
	data := make([]entityData, 0, len(codes))

	for _, code := range codes {
		e := model.Entity{ClassName: code, Fields: parents[code].Fields()}

		d, err := em.entityData(&e)
		if err != nil {
			return err
		}

		// Parents carry no relations of their own.
		d.Relations = nil
		data = append(data, d)
	}

	return render(w, data)
}

func (em *Emitter) entityData(e *model.Entity) (entityData, error) {
	d := entityData{Name: e.ClassName}

	for _, f := range e.Fields {
		if !f.IsJdlType {
			continue
		}

		if !catalog.IsJDLType(f.FieldType) {
			return d, fmt.Errorf("entity %s, field %s: %q is not a JDL type: %w",
				e.ClassName, f.FieldName, f.FieldType, common.ErrTypeConversion)
		}

		fd := fieldData{Name: f.FieldName, Type: f.FieldType}
		if f.FieldLength != "" && f.FieldType == catalog.String {
			fd.MaxLength = f.FieldLength
		}

		d.Fields = append(d.Fields, fd)
	}

	for _, r := range e.Relations {
		d.Relations = append(d.Relations, relationData{
			Type:   r.Type.String(),
			Ref:    fmt.Sprintf("%s{%s}", r.Source, r.Field.FieldName),
			Target: em.relations.Target(r),
		})
	}

	return d, nil
}

func render(w io.Writer, data []entityData) error {
	var buf bytes.Buffer
	if err := jdlTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing JDL: %w: %w", common.ErrOutputIO, err)
	}

	return nil
}
