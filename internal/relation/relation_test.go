package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jdl-generator/internal/catalog"
	"jdl-generator/internal/model"
)

func jdl(name, typ string) model.Field {
	return model.Field{FieldType: typ, FieldName: name, IsJdlType: true}
}

func ref(name, typ string) model.Field {
	return model.Field{FieldType: typ, FieldName: name}
}

func TestInferOneToMany(t *testing.T) {
	order := model.Entity{
		ClassName: "Order",
		Fields:    []model.Field{jdl("id", "Long"), ref("items", "Список Item")},
	}

	in := New(catalog.ListMarker)

	require.Equal(t, 1, in.InferEntity(&order))
	require.Len(t, order.Relations, 1)

	r := order.Relations[0]
	assert.Equal(t, model.RelationOneToMany, r.Type)
	assert.Equal(t, "Order", r.Source)
	assert.Equal(t, "items", r.Field.FieldName)
	assert.Equal(t, "Item", in.Target(r))
	assert.Len(t, order.Fields, 2, "relation fields stay on the entity")
}

func TestInferOneToOne(t *testing.T) {
	user := model.Entity{
		ClassName: "User",
		Fields:    []model.Field{ref("address", "Address"), jdl("name", "String")},
	}

	in := New(catalog.ListMarker)

	require.Equal(t, 1, in.InferEntity(&user))

	r := user.Relations[0]
	assert.Equal(t, model.RelationOneToOne, r.Type)
	assert.Equal(t, "Address", in.Target(r))
}

func TestInferDiscipline(t *testing.T) {
	entities := []model.Entity{
		{ClassName: "A", Fields: []model.Field{jdl("x", "String"), ref("b", "B"), ref("cs", "Список C")}},
		{ClassName: "B", Fields: []model.Field{jdl("y", "Long")}},
		{ClassName: "C", Fields: []model.Field{ref("a", "A"), ref("bs", "Список<B>")}},
	}

	in := New(catalog.ListMarker)

	assert.Equal(t, 4, in.Infer(entities))

	for _, e := range entities {
		for _, r := range e.Relations {
			assert.False(t, r.Field.IsJdlType)
			assert.Equal(t, e.ClassName, r.Source)
			assert.True(t, e.HasField(r.Field))
		}
	}

	assert.Equal(t, "B", in.Target(entities[2].Relations[1]))
}

func TestInferReplacesPreviousRelations(t *testing.T) {
	e := model.Entity{ClassName: "A", Fields: []model.Field{ref("b", "B")}}
	in := New(catalog.ListMarker)

	in.InferEntity(&e)
	in.InferEntity(&e)

	assert.Len(t, e.Relations, 1)
}

func TestTargetTrimsWrappers(t *testing.T) {
	in := New(catalog.ListMarker)

	tests := map[string]string{
		"Список Item":    "Item",
		"Список<Item>":   "Item",
		"Список (Item)":  "Item",
		"Список: Item":   "Item",
		"Item Список":    "Item",
		"Список  Item  ": "Item",
	}

	for raw, want := range tests {
		r := model.Relation{Field: ref("f", raw), Type: model.RelationOneToMany}
		assert.Equal(t, want, in.Target(r), raw)
	}
}
