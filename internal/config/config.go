package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jdl-generator/internal/catalog"
)

// Supported input encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251"
)

// Config is the full generator configuration.
type Config struct {
	Version  string  `yaml:"version"`
	Encoding string  `yaml:"encoding"`
	Columns  Columns `yaml:"columns"`
	Markers  Markers `yaml:"markers"`
	Types    Types   `yaml:"types"`
	Parents  Parents `yaml:"parents"`
	UI       UI      `yaml:"ui"`
}

// Columns holds zero-based positions of the meaningful spreadsheet columns.
// A negative Label disables captions.
type Columns struct {
	ClassName   int `yaml:"class_name"`
	FieldName   int `yaml:"field_name"`
	FieldType   int `yaml:"field_type"`
	FieldLength int `yaml:"field_length"`
	Label       int `yaml:"label"`
}

// Markers holds the sentinel substrings of the corpus.
type Markers struct {
	NonEntity string `yaml:"non_entity"`
	List      string `yaml:"list"`
}

// Types configures the type catalog.
type Types struct {
	Convertible []string       `yaml:"convertible"`
	Rules       []catalog.Rule `yaml:"rules"`
}

// Parent synthesis modes.
const (
	ParentModeClassUnion = "class_union"
	ParentModeCommon     = "common"
)

// Parents configures parent synthesis.
type Parents struct {
	// Mode is class_union (intersect per class, union across classes) or
	// common (fields shared by every child).
	Mode string `yaml:"mode"`
}

// UI configures the projection descriptors.
type UI struct {
	Registry string   `yaml:"registry"`
	Actions  []Action `yaml:"actions,omitempty"`
}

// Action is an operation offered by a projection.
type Action struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Default returns the configuration of the Russian spreadsheet corpus.
func Default() Config {
	return Config{
		Version:  "1",
		Encoding: EncodingUTF8,
		Columns: Columns{
			ClassName:   1,
			FieldName:   2,
			FieldType:   5,
			FieldLength: 6,
			Label:       -1,
		},
		Markers: Markers{
			NonEntity: catalog.NonEntityMarker,
			List:      catalog.ListMarker,
		},
		Types: Types{
			Convertible: catalog.DefaultLabels(),
			Rules:       catalog.DefaultRules(),
		},
		Parents: Parents{
			Mode: ParentModeClassUnion,
		},
		UI: UI{
			Registry: "registry",
		},
	}
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data on top of Default. Keys missing from data keep
// their default values; lists given in data replace the default lists.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults restores defaults that an explicit empty value wiped out.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Version == "" {
		cfg.Version = def.Version
	}

	if cfg.Encoding == "" {
		cfg.Encoding = def.Encoding
	}

	if cfg.Markers.NonEntity == "" {
		cfg.Markers.NonEntity = def.Markers.NonEntity
	}

	if cfg.Markers.List == "" {
		cfg.Markers.List = def.Markers.List
	}

	if cfg.Parents.Mode == "" {
		cfg.Parents.Mode = def.Parents.Mode
	}

	if cfg.UI.Registry == "" {
		cfg.UI.Registry = def.UI.Registry
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Catalog builds the type catalog described by the configuration.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	return catalog.New(c.Types.Convertible, c.Types.Rules)
}
