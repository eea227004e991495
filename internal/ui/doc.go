// Package ui produces the JSON descriptors of list-view projections.
//
// For every parent entity a registry item "<Code>Presentation" is created
// under the configured registry, plus a projection listing the parent's
// inherited fields and the configured actions. The target directory is
// emptied before anything is written.
package ui
