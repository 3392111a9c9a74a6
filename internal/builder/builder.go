// Package builder orchestrates the full generation pipeline: discover and
// parse schema files, merge multi-file declarations, validate and complete
// every DTO, analyze the dependency graph, resolve inheritance, compute final
// placement, and attach the derived metadata the emission stage consumes.
//
// The pipeline is all-or-nothing: a failure anywhere aborts the run before
// any file is written. Per-DTO phases share no mutable state beyond read-only
// access to the DTO name set, so they fan out across a bounded worker group;
// the graph-wide phases run single-threaded after the barrier.
package builder

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"dto-generator/internal/common"
	"dto-generator/internal/complete"
	"dto-generator/internal/diagnostic"
	"dto-generator/internal/dto"
	"dto-generator/internal/extends"
	"dto-generator/internal/graph"
	"dto-generator/internal/schema"
	"dto-generator/internal/typing"
	"dto-generator/internal/validate"
)

// Config holds one generation run's configuration. Everything the pipeline
// needs is passed here; nothing is read from globals.
type Config struct {
	// ConfigURL is the directory holding schema files.
	ConfigURL string
	// Extension selects schema files under ConfigURL.
	Extension string
	// Namespace is the root namespace for generated classes.
	Namespace string
	// ClassSuffix is appended to every generated class name and stripped when
	// class references are resolved back to logical DTO names.
	ClassSuffix string
	// ExtraScalars extends the scalar whitelist.
	ExtraScalars []string
	// Classes declares the external classes schemas may reference.
	Classes []typing.ClassInfo
	// Completion configures the field completor.
	Completion complete.Config
	// Workers bounds the per-DTO fan-out. Values below 1 mean sequential.
	Workers int
}

// DefaultConfig returns the default builder configuration.
func DefaultConfig() Config {
	return Config{
		Extension:  ".yaml",
		Completion: complete.DefaultConfig(),
		Workers:    4,
	}
}

// Builder runs the resolution pipeline.
type Builder struct {
	config Config

	finder     *schema.Finder
	classifier *typing.Classifier
	resolver   *typing.Resolver
	validator  *validate.Validator
	completor  *complete.Completor
	extends    *extends.Resolver
	analyzer   *graph.Analyzer
}

// New creates a builder for one generation run.
func New(config Config) *Builder {
	registry := typing.NewClassRegistry(config.Classes...)
	classifier := typing.NewClassifier(registry, config.ExtraScalars...)
	resolver := typing.NewResolver(classifier)

	return &Builder{
		config:     config,
		finder:     schema.NewFinder(),
		classifier: classifier,
		resolver:   resolver,
		validator:  validate.NewValidator(classifier),
		completor:  complete.NewCompletor(classifier, resolver, config.Completion),
		extends:    extends.NewResolver(registry),
		analyzer:   graph.NewAnalyzer(config.ClassSuffix),
	}
}

// Build discovers, parses, and resolves the whole schema set.
func (b *Builder) Build(ctx context.Context) (*dto.SchemaSet, error) {
	files, err := b.finder.Collect(ctx, b.config.ConfigURL, b.config.Extension)
	if err != nil {
		return nil, err
	}

	sources, err := schema.LoadAll(ctx, b.finder.FS(), files)
	if err != nil {
		return nil, err
	}

	return b.BuildFromSources(ctx, sources)
}

// BuildFromSources resolves already-parsed sources. This is the seam used by
// tests and by alternate config-format frontends.
func (b *Builder) BuildFromSources(ctx context.Context, sources []*schema.Source) (*dto.SchemaSet, error) {
	merged, diags := schema.Merge(sources)
	if diags.HasErrors() {
		return nil, diags.Err()
	}

	set := dto.NewSchemaSet()

	rawDiags := &diagnostic.Diagnostics{}

	for _, name := range common.SortedKeys(merged.Dtos) {
		raw := merged.Dtos[name]
		rawDiags.Merge(b.validator.ValidateRaw(name, raw))
		set.Add(raw.Definition(name, merged.Files[name]))
	}

	if rawDiags.HasErrors() {
		return nil, rawDiags.Err()
	}

	if err := b.completeAll(ctx, set); err != nil {
		return nil, err
	}

	g, graphDiags := b.analyzer.Analyze(set)
	if graphDiags.HasErrors() {
		return nil, graphDiags.Err()
	}

	if extDiags := b.extends.Resolve(set); extDiags.HasErrors() {
		return nil, extDiags.Err()
	}

	for _, name := range set.Names() {
		b.place(set.Lookup(name))
	}

	// Dependencies first, ties by name: emission order is deterministic.
	if order, ok := graph.TopoOrder(g); ok {
		set.Reorder(order)
	}

	b.attachMetadata(set)

	return set, nil
}

// completeAll fans validation and completion out per DTO with a fan-in
// barrier. Diagnostics are collected from every DTO before failing, so one
// run reports all broken definitions, not just the first.
func (b *Builder) completeAll(ctx context.Context, set *dto.SchemaSet) error {
	group, _ := errgroup.WithContext(ctx)

	if b.config.Workers > 1 {
		group.SetLimit(b.config.Workers)
	} else {
		group.SetLimit(1)
	}

	var mu sync.Mutex

	all := &diagnostic.Diagnostics{}

	for _, name := range set.Names() {
		def := set.Lookup(name)

		group.Go(func() error {
			d := b.validator.ValidateDefinition(def)
			if !d.HasErrors() {
				d.Merge(b.completor.Complete(def))
			}

			if d.HasErrors() {
				mu.Lock()
				all.Merge(d)
				mu.Unlock()
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return all.Err()
}

// place computes the final namespace and class name. A "/" in a DTO name
// splits into nested namespace segments plus the leaf class name.
func (b *Builder) place(def *dto.Definition) {
	segments := strings.Split(def.Name, "/")
	leaf := segments[len(segments)-1]

	parts := make([]string, 0, len(segments))
	if b.config.Namespace != "" {
		parts = append(parts, b.config.Namespace)
	}

	parts = append(parts, segments[:len(segments)-1]...)

	def.Namespace = strings.Join(parts, `\`)
	def.ClassName = leaf + b.config.ClassSuffix
}

func (b *Builder) attachMetadata(set *dto.SchemaSet) {
	for _, def := range set.InOrder() {
		fields := def.Fields()
		def.Meta = make([]dto.FieldMeta, 0, len(fields))

		for _, f := range fields {
			def.Meta = append(def.Meta, f.Meta())
		}

		def.ArrayShape = buildShape(set, def)
	}
}
