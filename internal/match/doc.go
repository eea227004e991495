// Package match provides name normalization and Levenshtein similarity for
// suggesting the entity a misspelled class name probably meant.
//
// Key functions:
//   - NormalizeIdent: case-folds and strips separators
//   - Levenshtein: rune-wise edit distance, safe for Cyrillic names
//   - Suggest: ranks known names by normalized similarity
package match
