package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/tunecat/internal/catalog"
	"github.com/harrison/tunecat/internal/config"
	"github.com/harrison/tunecat/internal/logger"
)

// NewGenerateCommand creates the generate subcommand
func NewGenerateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [tunes|docs]...",
		Short: "Regenerate one or both catalog modules",
		Long: `Regenerate catalog modules. With no arguments both the tune catalog and
the docs catalog are written, exactly like running tunecat on its own.

Problems with individual files are logged and never stop the build;
the command always exits 0.`,
		ValidArgs: []string{"tunes", "docs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(args)
			if err != nil {
				return err
			}
			runGenerate(opts, kinds, cmd.OutOrStdout())
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}

// parseKinds maps catalog names to kinds; no names means every catalog
func parseKinds(args []string) ([]catalog.Kind, error) {
	if len(args) == 0 {
		return catalog.Kinds(), nil
	}

	var kinds []catalog.Kind
	seen := make(map[catalog.Kind]bool)
	for _, arg := range args {
		kind, ok := catalog.ParseKind(arg)
		if !ok {
			return nil, fmt.Errorf("unknown catalog %q (want tunes or docs)", arg)
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

// runGenerate regenerates kinds and prints a summary per catalog. It never
// fails: an unusable config falls back to defaults and every error is logged.
func runGenerate(opts *rootOptions, kinds []catalog.Kind, out io.Writer) {
	projectDir, cfg, err := opts.load()
	if err != nil {
		cfg = config.DefaultConfig()
		log := newLogger(out, cfg)
		log.LogError(fmt.Sprintf("%v; using defaults", err))
		if projectDir == "" {
			return
		}
		generateCatalogs(projectDir, cfg, kinds, log)
		return
	}

	generateCatalogs(projectDir, cfg, kinds, newLogger(out, cfg))
}

// generateCatalogs builds and writes each requested catalog in order
func generateCatalogs(projectDir string, cfg *config.Config, kinds []catalog.Kind, log *logger.ConsoleLogger) map[catalog.Kind]*catalog.Result {
	builder := catalog.NewBuilder(log)
	all := targets(projectDir, cfg)
	results := make(map[catalog.Kind]*catalog.Result, len(kinds))

	for _, kind := range kinds {
		result, err := builder.Generate(all[kind])
		if err != nil {
			log.LogError(fmt.Sprintf("Failed to generate %s catalog: %v", kind, err))
			continue
		}
		results[kind] = result
		log.LogSummary(kind.SummaryLabel(), result.Catalog.Len(), kind.SummaryUnit())
	}

	return results
}
