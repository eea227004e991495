package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"jdl-generator/internal/assemble"
	"jdl-generator/internal/common"
	"jdl-generator/internal/config"
	"jdl-generator/internal/csvin"
	"jdl-generator/internal/diagnostic"
	"jdl-generator/internal/jdl"
	"jdl-generator/internal/logger"
	"jdl-generator/internal/model"
	"jdl-generator/internal/parent"
	"jdl-generator/internal/relation"
)

// Summary reports what a run produced.
type Summary struct {
	EntitiesWritten  int
	RelationsWritten int
	Diagnostics      diagnostic.Diagnostics
}

// Coordinator runs the CSV to JDL pipeline. It holds no state between runs.
type Coordinator struct {
	cfg       *config.Config
	assembler *assemble.Assembler
	inferrer  *relation.Inferrer
	emitter   *jdl.Emitter
	log       *slog.Logger
}

// New creates a Coordinator for a validated configuration.
func New(cfg *config.Config, log *slog.Logger) (*Coordinator, error) {
	log = logger.OrDiscard(log)

	asm, err := assemble.FromConfig(cfg, log)
	if err != nil {
		return nil, err
	}

	inferrer := relation.New(cfg.Markers.List)

	return &Coordinator{
		cfg:       cfg,
		assembler: asm,
		inferrer:  inferrer,
		emitter:   jdl.New(inferrer),
		log:       log,
	}, nil
}

// Entities assembles every source in order and infers relations on the
// concatenated result.
func (c *Coordinator) Entities(sources []Source) ([]model.Entity, diagnostic.Diagnostics, error) {
	var (
		entities []model.Entity
		diags    diagnostic.Diagnostics
	)

	for _, src := range sources {
		res, err := c.readSource(src)
		if err != nil {
			return nil, diags, fmt.Errorf("source %s: %w", src.Name, err)
		}

		c.log.Info("source assembled", "source", src.Name, "entities", len(res.Entities))
		c.logDiagnostics(res.Diagnostics)

		entities = append(entities, res.Entities...)
		diags.Merge(res.Diagnostics)
	}

	c.inferrer.Infer(entities)

	return entities, diags, nil
}

// Run assembles sources and writes their JDL to out.
func (c *Coordinator) Run(sources []Source, out io.Writer) (*Summary, error) {
	entities, diags, err := c.Entities(sources)
	if err != nil {
		return nil, err
	}

	sum, err := c.Emit(out, entities)
	if err != nil {
		return nil, err
	}

	sum.Diagnostics = diags

	return sum, nil
}

// Emit writes already assembled entities as JDL to out.
func (c *Coordinator) Emit(out io.Writer, entities []model.Entity) (*Summary, error) {
	sum := &Summary{EntitiesWritten: len(entities)}

	for _, e := range entities {
		sum.RelationsWritten += len(e.Relations)
	}

	if err := c.write(out, func(w io.Writer) error { return c.emitter.Write(w, entities) }); err != nil {
		return nil, err
	}

	c.log.Info("jdl written", "entities", sum.EntitiesWritten, "relations", sum.RelationsWritten)

	return sum, nil
}

// EmitFile is Emit writing to a file created at path.
func (c *Coordinator) EmitFile(path string, entities []model.Entity) (*Summary, error) {
	var sum *Summary

	err := writeFile(path, func(w io.Writer) error {
		var err error

		sum, err = c.Emit(w, entities)

		return err
	})

	return sum, err
}

// RunFile is Run writing to a file created at path.
func (c *Coordinator) RunFile(sources []Source, path string) (*Summary, error) {
	var sum *Summary

	err := writeFile(path, func(w io.Writer) error {
		var err error

		sum, err = c.Run(sources, w)

		return err
	})

	return sum, err
}

// Parents reads the parentage source and synthesizes the parent field sets
// for entities, using the configured mode.
func (c *Coordinator) Parents(src Source, entities []model.Entity) (model.ParentEntityFields, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	rc, err := src.Open()
	if err != nil {
		return nil, diags, fmt.Errorf("source %s: %w", src.Name, err)
	}

	p, readDiags, err := parent.ReadParentage(rc, c.cfg.Encoding)
	closeErr := rc.Close()

	if err == nil && closeErr != nil {
		err = fmt.Errorf("closing: %w: %w", common.ErrInputIO, closeErr)
	}

	if err != nil {
		return nil, diags, fmt.Errorf("source %s: %w", src.Name, err)
	}

	diags.Merge(readDiags)

	grouping, groupDiags := parent.Group(p, entities)
	diags.Merge(groupDiags)
	c.logDiagnostics(diags)

	mode := parent.ModeClassUnion
	if c.cfg.Parents.Mode == config.ParentModeCommon {
		mode = parent.ModeCommon
	}

	parents := parent.Synthesize(grouping, mode)
	c.log.Info("parents synthesized", "source", src.Name, "parents", len(parents))

	return parents, diags, nil
}

// WriteParentsFile writes the parent entities as JDL to a file at path.
func (c *Coordinator) WriteParentsFile(parents model.ParentEntityFields, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return c.write(w, func(w io.Writer) error { return c.emitter.WriteParents(w, parents) })
	})
}

func (c *Coordinator) readSource(src Source) (res *assemble.Result, err error) {
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}

	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing: %w: %w", common.ErrInputIO, closeErr)
		}
	}()

	return c.assembler.Assemble(src.Name, csvin.Records(rc, c.cfg.Encoding))
}

// write runs emit against a buffered view of out and flushes it.
func (c *Coordinator) write(out io.Writer, emit func(io.Writer) error) error {
	bw := bufio.NewWriter(out)

	if err := emit(bw); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w: %w", common.ErrOutputIO, err)
	}

	return nil
}

func (c *Coordinator) logDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		switch d.Severity {
		case diagnostic.DiagnosticError:
			c.log.Error(d.String())
		case diagnostic.DiagnosticWarning:
			c.log.Warn(d.String())
		default:
			c.log.Debug(d.String())
		}
	}
}

// writeFile creates path, hands it to fn and closes it on every path.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w: %w", path, common.ErrOutputIO, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w: %w", path, common.ErrOutputIO, closeErr))
		}
	}()

	return fn(f)
}
