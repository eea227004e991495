package parent

import (
	"jdl-generator/internal/common"
	"jdl-generator/internal/model"
)

// Mode selects how class groups under one parent are combined.
type Mode int

const (
	// ModeClassUnion intersects the variants of each class and unions the
	// results across classes.
	ModeClassUnion Mode = iota
	// ModeCommon keeps only the fields present in every child of the parent.
	ModeCommon
)

// Synthesize computes the inheritable field set of every parent code.
func Synthesize(g model.EntityTypeGrouping, mode Mode) model.ParentEntityFields {
	out := make(model.ParentEntityFields, len(g))

	for code, variants := range g {
		out[code] = synthesizeOne(variants, mode)
	}

	return out
}

func synthesizeOne(variants []model.Entity, mode Mode) *model.FieldSet {
	if mode == ModeCommon {
		return intersectAll(variants)
	}

	result := model.NewFieldSet()

	for _, group := range common.GroupBy(variants, func(e model.Entity) string { return e.ClassName }) {
		result = result.Union(intersectAll(group))
	}

	return result
}

// intersectAll returns the fields shared by every entity; a single entity
// contributes all of its fields.
func intersectAll(entities []model.Entity) *model.FieldSet {
	if common.IsEmpty(entities) {
		return model.NewFieldSet()
	}

	set := model.NewFieldSet(entities[0].Fields...)
	if common.IsSingle(entities) {
		return set
	}

	for _, e := range entities[1:] {
		set = set.Intersect(model.NewFieldSet(e.Fields...))
	}

	return set
}
