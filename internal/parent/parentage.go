package parent

import (
	"fmt"
	"io"
	"slices"

	"jdl-generator/internal/csvin"
	"jdl-generator/internal/diagnostic"
	"jdl-generator/internal/match"
	"jdl-generator/internal/model"
)

// Diagnostic codes reported while grouping.
const (
	CodeUnknownChild = "unknown_child"
	CodeOrphanChild  = "orphan_child"
)

// Parentage lists child class names per parent code, both in file order.
type Parentage struct {
	Codes    []string
	Children map[string][]string
}

// Add records child under code, ignoring repeats.
func (p *Parentage) Add(code, child string) {
	if p.Children == nil {
		p.Children = make(map[string][]string)
	}

	children, ok := p.Children[code]
	if !ok {
		p.Codes = append(p.Codes, code)
	}

	if slices.Contains(children, child) {
		return
	}

	p.Children[code] = append(children, child)
}

// ReadParentage reads a parentage CSV. Rows without a child, and rows
// before the first parent code, are skipped and reported.
func ReadParentage(r io.Reader, encoding string) (*Parentage, diagnostic.Diagnostics, error) {
	p := &Parentage{Children: map[string][]string{}}

	var (
		diags   diagnostic.Diagnostics
		current string
	)

	for rec, err := range csvin.Records(r, encoding) {
		if err != nil {
			return nil, diags, fmt.Errorf("reading parentage: %w", err)
		}

		code, child := rec.Get(0), rec.Get(1)
		if code != "" {
			current = code
		}

		if child == "" {
			continue
		}

		if current == "" {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticWarning,
				Code:     CodeOrphanChild,
				Message:  "child listed before any parent code, skipped",
				Entity:   child,
				Row:      rec.Line,
			})

			continue
		}

		p.Add(current, child)
	}

	return p, diags, nil
}

// Group collects, for every parent code, all entity variants whose class
// name is listed as its child. Children with no matching entity are
// reported with close-match suggestions.
func Group(p *Parentage, entities []model.Entity) (model.EntityTypeGrouping, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	byName := map[string][]model.Entity{}

	var known []string

	for _, e := range entities {
		if _, ok := byName[e.ClassName]; !ok {
			known = append(known, e.ClassName)
		}

		byName[e.ClassName] = append(byName[e.ClassName], e)
	}

	grouping := make(model.EntityTypeGrouping, len(p.Codes))

	for _, code := range p.Codes {
		var variants []model.Entity

		for _, child := range p.Children[code] {
			found, ok := byName[child]
			if !ok {
				diags.Add(diagnostic.Diagnostic{
					Severity:    diagnostic.DiagnosticWarning,
					Code:        CodeUnknownChild,
					Message:     fmt.Sprintf("parent %q lists unknown entity %q", code, child),
					Entity:      child,
					Suggestions: match.Suggest(child, known, 3, match.DefaultMinScore),
				})

				continue
			}

			variants = append(variants, found...)
		}

		grouping[code] = variants
	}

	return grouping, diags
}
