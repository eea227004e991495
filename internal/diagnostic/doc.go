// Package diagnostic provides structured warnings and notes collected while
// turning spreadsheet exports into a JDL model.
//
// Typical findings:
//   - continuation rows with no entity to attach to
//   - rows rejected by the non-entity marker
//   - class names redefined later in the same stream
//   - parentage entries naming unknown entities, with close-match suggestions
package diagnostic
