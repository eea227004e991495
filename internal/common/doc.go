// Package common holds the error kinds shared by the pipeline stages and a
// few generic slice helpers.
//
// Error kinds:
//   - ErrInputIO: an input stream cannot be opened or read
//   - ErrInputFormat: CSV framing is violated
//   - ErrTypeConversion: the type catalog and its conversion rules disagree
//   - ErrOutputIO: JDL output or target directory cleanup failed
package common
