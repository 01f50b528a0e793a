package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/tunecat/internal/listing"
)

// NewListingCommand creates the listing subcommand
func NewListingCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing",
		Short: "Concatenate the front-end sources into one text file",
		Long: `Write every file under the listing directories (default js/ and css/)
and the listing files (default index.html) into list_files.txt, each
preceded by a "==> Listing of <path> <==" header.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeListing(opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

func writeListing(opts *rootOptions, out io.Writer) error {
	projectDir, cfg, err := opts.load()
	if err != nil {
		return err
	}

	if _, err := listing.Write(projectDir, cfg.Listing); err != nil {
		return err
	}
	fmt.Fprintf(out, "File listing created in %s\n", cfg.Listing.Output)
	return nil
}
