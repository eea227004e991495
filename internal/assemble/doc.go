// Package assemble groups spreadsheet rows into entities.
//
// Rows are positional. A row whose class-name cell is non-empty and free of
// the non-entity marker starts a new entity and contributes its first
// field. A row with an empty class-name cell continues the entity started
// last. Rows seen before any entity are dropped, as are marker rows.
//
// A class name repeated within one stream replaces the earlier entity; the
// entity keeps the position of its first appearance. Definitions are never
// merged.
package assemble
