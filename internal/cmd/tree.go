package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/tunecat/internal/catalog"
	"github.com/harrison/tunecat/internal/display"
)

// NewTreeCommand creates the tree subcommand
func NewTreeCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "tree [tunes|docs]...",
		Short:     "Print catalogs as trees without writing them",
		ValidArgs: []string{"tunes", "docs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(args)
			if err != nil {
				return err
			}
			return printTrees(opts, kinds, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

func printTrees(opts *rootOptions, kinds []catalog.Kind, out io.Writer) error {
	projectDir, cfg, err := opts.load()
	if err != nil {
		return err
	}

	builder := catalog.NewBuilder(newLogger(out, cfg))
	all := targets(projectDir, cfg)

	for i, kind := range kinds {
		target := all[kind]
		if i > 0 {
			fmt.Fprintln(out)
		}

		label := cfg.ContentDir
		if kind == catalog.KindDocs {
			label = cfg.DocsDir
		}

		result, err := builder.Build(target)
		if err != nil {
			fmt.Fprintf(out, "%s (not found)\n", label)
			continue
		}
		fmt.Fprint(out, display.CatalogTree(label, result.Catalog))
	}

	return nil
}
