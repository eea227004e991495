// Package catalog maps the type labels used in the source spreadsheets to
// JDL field types.
//
// A label is convertible only if it is listed verbatim in the catalog.
// Convertible labels are then resolved by ordered substring rules; the
// first rule whose fragment the label contains wins. Labels that are not
// convertible are passed through untouched and later treated as references
// to other entities.
//
// The sentinel strings of the Russian spreadsheet corpus live in
// markers.go.
package catalog
