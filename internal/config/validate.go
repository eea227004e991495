package config

import (
	"fmt"

	"jdl-generator/internal/catalog"
	"jdl-generator/internal/diagnostic"
)

// Validate checks the configuration for structural mistakes.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	switch cfg.Encoding {
	case EncodingUTF8, EncodingWindows1251:
	default:
		res.AddError("unknown_encoding", fmt.Sprintf("unsupported encoding %q", cfg.Encoding), "", "")
	}

	switch cfg.Parents.Mode {
	case ParentModeClassUnion, ParentModeCommon:
	default:
		res.AddError("unknown_parent_mode", fmt.Sprintf("unsupported parent mode %q", cfg.Parents.Mode), "", "")
	}

	validateColumns(res, cfg.Columns)

	seenLabels := map[string]struct{}{}

	for _, l := range cfg.Types.Convertible {
		if _, ok := seenLabels[l]; ok {
			res.AddWarning("duplicate_label", fmt.Sprintf("convertible label %q listed twice", l), "", "")
			continue
		}

		seenLabels[l] = struct{}{}
	}

	for i, r := range cfg.Types.Rules {
		if r.Contains == "" {
			res.AddError("empty_rule", fmt.Sprintf("rule %d has an empty fragment", i), "", "")
		}

		if !catalog.IsJDLType(r.JDL) {
			res.AddError("unknown_jdl_type", fmt.Sprintf("rule %d targets %q, not a JDL type", i, r.JDL), "", "")
		}
	}

	for i, a := range cfg.UI.Actions {
		if a.Code == "" {
			res.AddError("empty_action", fmt.Sprintf("action %d has no code", i), "", "")
		}
	}

	return res
}

func validateColumns(res *diagnostic.Diagnostics, cols Columns) {
	named := []struct {
		name string
		idx  int
	}{
		{"class_name", cols.ClassName},
		{"field_name", cols.FieldName},
		{"field_type", cols.FieldType},
		{"field_length", cols.FieldLength},
	}

	seen := map[int]string{}

	for _, c := range named {
		if c.idx < 0 {
			res.AddError("negative_column", fmt.Sprintf("column %s is negative (%d)", c.name, c.idx), "", "")
			continue
		}

		if other, ok := seen[c.idx]; ok {
			res.AddWarning("shared_column", fmt.Sprintf("columns %s and %s both read index %d", other, c.name, c.idx), "", "")
		}

		seen[c.idx] = c.name
	}
}
