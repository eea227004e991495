// Package main provides the CLI entrypoint for jdl-generator.
//
// jdl-generator reads entity descriptions exported from a spreadsheet as
// CSV and:
//   - Writes the entities and their relations as JDL
//   - Optionally synthesizes parent entities from an entity-type CSV
//   - Optionally writes list-view projection descriptors as JSON
//
// Usage:
//
//	jdl-generator [flags] entities.csv...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"

	"jdl-generator/internal/config"
	"jdl-generator/internal/logger"
	"jdl-generator/internal/pipeline"
	"jdl-generator/internal/ui"
)

// Environment variables providing flag defaults.
const (
	envConfig   = "JDLGEN_CONFIG"
	envLogLevel = "JDLGEN_LOG_LEVEL"
)

var errUsage = errors.New("usage")

type options struct {
	configPath string
	out        string
	types      string
	parentsOut string
	uiDir      string
	registry   string
	logLevel   string
	dump       bool
	inputs     []string
}

func main() {
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		fmt.Fprintln(stderr, err)

		return 2
	}

	if err := generate(opts, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("jdl-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", os.Getenv(envConfig), "YAML configuration file")
	fs.StringVar(&opts.out, "out", "-", "JDL output file, - for stdout")
	fs.StringVar(&opts.types, "types", "", "entity-type parentage CSV")
	fs.StringVar(&opts.parentsOut, "parents-out", "", "JDL file for synthesized parent entities (needs -types)")
	fs.StringVar(&opts.uiDir, "ui-dir", "", "directory for projection descriptors, emptied first (needs -types)")
	fs.StringVar(&opts.registry, "registry", "", "registry code of the presentations (overrides config)")
	fs.StringVar(&opts.logLevel, "log-level", envOr(envLogLevel, "info"), "log level: debug, info, warn, error")
	fs.BoolVar(&opts.dump, "dump", false, "dump the assembled model to stderr")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: jdl-generator [flags] entities.csv...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.inputs = fs.Args()
	if len(opts.inputs) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("%w: at least one input CSV is required", errUsage)
	}

	if opts.types == "" && (opts.parentsOut != "" || opts.uiDir != "") {
		return nil, fmt.Errorf("%w: -parents-out and -ui-dir need -types", errUsage)
	}

	return opts, nil
}

func generate(opts *options, stdout, stderr io.Writer) error {
	log, err := logger.New(stderr, opts.logLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.registry != "" {
		cfg.UI.Registry = opts.registry
	}

	if diags := config.Validate(cfg); diags.HasErrors() {
		return fmt.Errorf("invalid configuration: %w", diags.Error())
	}

	coord, err := pipeline.New(cfg, log)
	if err != nil {
		return err
	}

	entities, diags, err := coord.Entities(pipeline.FileSources(opts.inputs))
	if err != nil {
		return err
	}

	if opts.dump {
		spew.Fdump(stderr, entities)
	}

	var sum *pipeline.Summary
	if opts.out == "-" {
		sum, err = coord.Emit(stdout, entities)
	} else {
		sum, err = coord.EmitFile(opts.out, entities)
	}

	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Entities: %d\nRelations: %d\nDiagnostics: %d\n",
		sum.EntitiesWritten, sum.RelationsWritten, diags.Len())

	if opts.types == "" {
		return nil
	}

	parents, _, err := coord.Parents(pipeline.FileSource(opts.types), entities)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Parents: %d\n", len(parents))

	if opts.dump {
		spew.Fdump(stderr, parents)
	}

	if opts.parentsOut != "" {
		if err := coord.WriteParentsFile(parents, opts.parentsOut); err != nil {
			return err
		}
	}

	if opts.uiDir != "" {
		n, err := ui.NewWriter(cfg.UI, log).Write(opts.uiDir, parents)
		if err != nil {
			return err
		}

		fmt.Fprintf(stderr, "UI descriptors: %d\n", n)
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}

	return config.LoadFile(path)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
