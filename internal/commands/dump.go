package commands

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func registerDumpCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Resolve schema files and dump the completed definitions",
		Long: `Resolve schema files and dump every completed definition to stdout.

Useful when a generated accessor or type hint looks wrong: the dump shows the
fully completed field attributes before any backend touches them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "schemas", "Directory holding schema files")
	cmd.Flags().StringVar(&opts.extension, "extension", ".yaml", "Schema file extension")
	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "Root namespace for generated classes")
	cmd.Flags().StringVar(&opts.suffix, "suffix", "", "Suffix appended to generated class names")
	cmd.Flags().StringVar(&opts.classes, "classes", "", "YAML file declaring external classes")
	cmd.Flags().StringSliceVar(&opts.scalars, "scalar", nil, "Extra scalar type names")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "Per-DTO completion workers")

	parent.AddCommand(cmd)
}

func runDump(cmd *cobra.Command, opts *generateOptions) error {
	set, err := buildSet(cmd, opts)
	if err != nil {
		return err
	}

	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

	for _, def := range set.InOrder() {
		dumper.Fdump(cmd.OutOrStdout(), def.Name, def.Fields())
	}

	return nil
}
