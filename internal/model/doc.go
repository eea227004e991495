// Package model defines the intermediate representation shared by the
// assembler, the relation inferrer, the parent synthesizer and the emitters.
//
// Key types:
//   - Field: one attribute row of the spreadsheet; comparable, so == is value equality
//   - Entity: class name, ordered fields and inferred relations
//   - Relation: directed OneToOne/OneToMany edge from an entity field
//   - FieldSet: insertion-ordered set of fields used for parent synthesis
package model
