package catalog

import (
	"fmt"
	"strings"

	"jdl-generator/internal/common"
)

// Rule converts every convertible label containing Contains into JDL.
type Rule struct {
	Contains string `yaml:"contains"`
	JDL      string `yaml:"jdl"`
}

// Catalog decides which labels convert to JDL types and how.
type Catalog struct {
	convertible map[string]struct{}
	rules       []Rule
}

// New builds a catalog from the convertible labels and ordered rules.
// Every rule must target a JDL type.
func New(labels []string, rules []Rule) (*Catalog, error) {
	c := &Catalog{
		convertible: make(map[string]struct{}, len(labels)),
		rules:       make([]Rule, 0, len(rules)),
	}

	for _, l := range labels {
		c.convertible[l] = struct{}{}
	}

	for i, r := range rules {
		if r.Contains == "" {
			return nil, fmt.Errorf("rule %d: empty fragment", i)
		}

		if !IsJDLType(r.JDL) {
			return nil, fmt.Errorf("rule %d (%q): %q is not a JDL type", i, r.Contains, r.JDL)
		}

		c.rules = append(c.rules, r)
	}

	return c, nil
}

// Default returns the catalog of the Russian spreadsheet corpus.
func Default() *Catalog {
	c, err := New(DefaultLabels(), DefaultRules())
	if err != nil {
		panic(err)
	}

	return c
}

// IsConvertible reports whether raw is a label the catalog converts.
func (c *Catalog) IsConvertible(raw string) bool {
	_, ok := c.convertible[raw]
	return ok
}

// Convert returns the JDL type for a convertible label, or raw unchanged
// when it is not convertible.
func (c *Catalog) Convert(raw string) (string, error) {
	if !c.IsConvertible(raw) {
		return raw, nil
	}

	for _, r := range c.rules {
		if strings.Contains(raw, r.Contains) {
			return r.JDL, nil
		}
	}

	return "", fmt.Errorf("label %q has no conversion rule: %w", raw, common.ErrTypeConversion)
}
