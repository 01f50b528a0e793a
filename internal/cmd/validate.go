package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/tunecat/internal/catalog"
	"github.com/harrison/tunecat/internal/display"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report tune files that would be left out of the catalog",
		Long: `Scan the tune tree without writing anything and list every tune file
that lacks a numbered reference field ("X:1") or cannot be read.

Exit code: 0 if every tune file is catalogued, 1 otherwise`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateTunesWithOutput(opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

// validateTunesWithOutput validates the tune tree with custom output writer (for testing)
func validateTunesWithOutput(opts *rootOptions, output io.Writer) error {
	projectDir, cfg, err := opts.load()
	if err != nil {
		return err
	}

	target := targets(projectDir, cfg)[catalog.KindTunes]
	builder := catalog.NewBuilder(newLogger(output, cfg))
	result, err := builder.Build(target)
	if err != nil {
		return err
	}

	if len(result.Excluded) > 0 {
		display.WarnExcludedTunes(result.Excluded).Display(output)
	}
	if len(result.Unreadable) > 0 {
		display.WarnUnreadable(result.Unreadable).Display(output)
	}

	skipped := len(result.Excluded) + len(result.Unreadable)
	if skipped > 0 {
		return fmt.Errorf("%d of %d tune files would be left out of the catalog", skipped, result.Scanned)
	}

	fmt.Fprintf(output, "✓ All %d tune files are catalogued\n", result.Scanned)
	return nil
}
