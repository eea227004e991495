// Package relation derives relations from entity fields whose type is not a
// JDL type. Such a field names another entity; when its type carries the
// list marker it is a collection and the relation is OneToMany, otherwise
// OneToOne.
package relation

import (
	"strings"

	"jdl-generator/internal/model"
)

// wrapper is trimmed around the element class of a collection type.
const wrapper = " \t<>()[]{}:"

// Inferrer builds relations using a collection marker such as "Список".
type Inferrer struct {
	listMarker string
}

// New creates an Inferrer for the given collection marker.
func New(listMarker string) *Inferrer {
	return &Inferrer{listMarker: listMarker}
}

// Infer sets the relations of every entity and returns how many were created.
func (in *Inferrer) Infer(entities []model.Entity) int {
	total := 0
	for i := range entities {
		total += in.InferEntity(&entities[i])
	}

	return total
}

// InferEntity sets e.Relations from its fields, in field order, replacing
// any relations set before. It returns the number of relations.
func (in *Inferrer) InferEntity(e *model.Entity) int {
	e.Relations = nil

	for _, f := range e.Fields {
		if f.IsJdlType {
			continue
		}

		kind := model.RelationOneToOne
		if strings.Contains(f.FieldType, in.listMarker) {
			kind = model.RelationOneToMany
		}

		e.Relations = append(e.Relations, model.Relation{
			Source: e.ClassName,
			Field:  f,
			Type:   kind,
		})
	}

	return len(e.Relations)
}

// Target returns the class a relation points to: the element class for a
// collection, the field type itself otherwise.
func (in *Inferrer) Target(r model.Relation) string {
	if r.Type != model.RelationOneToMany {
		return r.Field.FieldType
	}

	elem := strings.Replace(r.Field.FieldType, in.listMarker, "", 1)

	return strings.Trim(elem, wrapper)
}
