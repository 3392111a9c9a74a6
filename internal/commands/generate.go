package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dto-generator/internal/builder"
	"dto-generator/internal/dto"
	"dto-generator/internal/gen"
	"dto-generator/internal/typing"
)

type generateOptions struct {
	config    string
	extension string
	output    string
	namespace string
	suffix    string
	pkg       string
	targets   string
	classes   string
	scalars   []string
	workers   int
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve schema files and emit DTO sources",
		Example: `  # Generate Go accessors from ./schemas into ./dtos
  dto-generator generate --config schemas --output dtos

  # Emit every backend with a class suffix
  dto-generator generate -c schemas -o dtos --suffix Dto --targets go,ts,jsonschema,meta`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "schemas", "Directory holding schema files")
	cmd.Flags().StringVar(&opts.extension, "extension", ".yaml", "Schema file extension")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "dtos", "Output directory")
	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "Root namespace for generated classes")
	cmd.Flags().StringVar(&opts.suffix, "suffix", "", "Suffix appended to generated class names")
	cmd.Flags().StringVar(&opts.pkg, "package", "dtos", "Package name for generated Go sources")
	cmd.Flags().StringVar(&opts.targets, "targets", "go", "Comma-separated backends (go, ts, jsonschema, meta)")
	cmd.Flags().StringVar(&opts.classes, "classes", "", "YAML file declaring external classes")
	cmd.Flags().StringSliceVar(&opts.scalars, "scalar", nil, "Extra scalar type names")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "Per-DTO completion workers")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	set, err := buildSet(cmd, opts)
	if err != nil {
		return err
	}

	var files []gen.GeneratedFile

	for _, target := range strings.Split(opts.targets, ",") {
		generator, err := newGenerator(strings.TrimSpace(target), opts)
		if err != nil {
			return err
		}

		out, err := generator.Generate(set)
		if err != nil {
			return err
		}

		files = append(files, out...)
	}

	if err := gen.WriteFiles(files, opts.output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d file(s) from %d dto(s)\n", len(files), set.Len())

	return nil
}

func buildSet(cmd *cobra.Command, opts *generateOptions) (*dto.SchemaSet, error) {
	classes, err := loadClasses(opts.classes)
	if err != nil {
		return nil, err
	}

	config := builder.DefaultConfig()
	config.ConfigURL = opts.config
	config.Extension = opts.extension
	config.Namespace = opts.namespace
	config.ClassSuffix = opts.suffix
	config.ExtraScalars = opts.scalars
	config.Classes = classes
	config.Workers = opts.workers

	return builder.New(config).Build(cmd.Context())
}

func newGenerator(target string, opts *generateOptions) (gen.Generator, error) {
	switch target {
	case "go":
		return gen.NewGoGenerator(gen.GoConfig{
			PackageName: opts.pkg,
			ClassSuffix: opts.suffix,
		}), nil
	case "ts":
		return gen.NewTSGenerator(gen.DefaultTSConfig()), nil
	case "jsonschema":
		return gen.NewSchemaGenerator(gen.DefaultSchemaConfig()), nil
	case "meta":
		return gen.NewMetaGenerator(gen.DefaultMetaConfig()), nil
	default:
		return nil, fmt.Errorf("unknown target %q (available: go, ts, jsonschema, meta)", target)
	}
}

// classDecl is the YAML shape of one external class declaration.
type classDecl struct {
	Name        string `yaml:"name"`
	Immutable   bool   `yaml:"immutable"`
	Extendable  bool   `yaml:"extendable"`
	Enum        bool   `yaml:"enum"`
	EnumBacking string `yaml:"enumBacking"`
	RoundTrip   bool   `yaml:"roundTrip"`
	JSONSafe    bool   `yaml:"jsonSafe"`
	HasToArray  bool   `yaml:"hasToArray"`
}

func loadClasses(path string) ([]typing.ClassInfo, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading classes file: %w", err)
	}

	var decls []classDecl
	if err := yaml.Unmarshal(data, &decls); err != nil {
		return nil, fmt.Errorf("parsing classes file %s: %w", path, err)
	}

	classes := make([]typing.ClassInfo, 0, len(decls))
	for _, d := range decls {
		classes = append(classes, typing.ClassInfo{
			Name:        d.Name,
			Immutable:   d.Immutable,
			Extendable:  d.Extendable,
			Enum:        d.Enum,
			EnumBacking: d.EnumBacking,
			RoundTrip:   d.RoundTrip,
			JSONSafe:    d.JSONSafe,
			HasToArray:  d.HasToArray,
		})
	}

	return classes, nil
}
