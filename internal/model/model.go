package model

//go:generate go tool stringer -type=RelationType -trimprefix=Relation -output=relation_type_string.go

// Field is one attribute of an entity.
//
// All members are comparable, so two fields are equal exactly when every
// attribute is equal and a Field can be used directly as a map key.
type Field struct {
	FieldType   string // JDL type name, or the raw class reference for non-JDL fields
	FieldName   string
	FieldLength string // max-length annotation, empty when absent
	IsJdlType   bool   // true if the source label was convertible
	Label       string // human readable caption, optional
}

// Entity is a named collection of fields plus the relations derived from them.
type Entity struct {
	ClassName string
	Fields    []Field
	Relations []Relation
	Label     string
	Title     string
}

// NewEntity creates an entity whose first field is first.
func NewEntity(className string, first Field) *Entity {
	return &Entity{
		ClassName: className,
		Fields:    []Field{first},
	}
}

// HasField reports whether f is one of the entity's fields.
func (e *Entity) HasField(f Field) bool {
	for _, own := range e.Fields {
		if own == f {
			return true
		}
	}

	return false
}

// RelationType is the cardinality of a relation.
type RelationType int

const (
	_ RelationType = iota // zero value is invalid

	RelationOneToOne
	RelationOneToMany
)

// Relation is a directed edge from an entity field to another entity. The
// target class is encoded in Field.FieldType.
type Relation struct {
	Source string // class name of the owning entity
	Field  Field
	Type   RelationType
}

// EntityTypeGrouping maps a parent code to the entity variants declared under it.
type EntityTypeGrouping map[string][]Entity

// ParentEntityFields maps a parent code to the fields shared by its children.
type ParentEntityFields map[string]*FieldSet
