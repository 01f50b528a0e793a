package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/tunecat/internal/catalog"
	"github.com/harrison/tunecat/internal/config"
	"github.com/harrison/tunecat/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	dir        string
	configPath string
	logLevel   string
}

// NewRootCommand creates and returns the root cobra command for tunecat
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tunecat",
		Short: "Build the tune and documentation catalogs for the ABC web player",
		Long: `Tunecat scans the ABC tune tree and the Markdown docs folder and writes
the JavaScript catalog modules the web player loads.

Running tunecat with no arguments regenerates both catalogs:
  abc/**/*.abc   -> js/data/abc-file-list.js
  docs/**/*.md   -> js/data/docs-file-list.js

Tunes need a numbered reference field ("X:1") to be listed; their title is
the first "T:" field and their category the folder they live in. Documents
are titled by their first "# " heading.

Paths can be changed in .tunecat.yaml in the project directory.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runGenerate(opts, catalog.Kinds(), cmd.OutOrStdout())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "project directory")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <dir>/"+config.FileName+")")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTreeCommand(opts))
	cmd.AddCommand(NewListingCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

// projectDir returns the absolute project directory
func (o *rootOptions) projectDir() (string, error) {
	dir := o.dir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project directory %s: %w", dir, err)
	}
	return abs, nil
}

// load resolves the project directory and configuration, with flags taking
// precedence over the config file.
func (o *rootOptions) load() (string, *config.Config, error) {
	projectDir, err := o.projectDir()
	if err != nil {
		return "", nil, err
	}

	var cfg *config.Config
	if o.configPath != "" {
		cfg, err = config.LoadConfig(o.configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(projectDir)
	}
	if err != nil {
		return projectDir, nil, err
	}

	if o.logLevel != "" {
		cfg.MergeWithFlags(&o.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return projectDir, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return projectDir, cfg, nil
}

// newLogger creates the console logger used by a command run
func newLogger(out io.Writer, cfg *config.Config) *logger.ConsoleLogger {
	return logger.NewConsoleLogger(out, cfg.LogLevel)
}

// targets maps each catalog kind to its resolved input and output paths
func targets(projectDir string, cfg *config.Config) map[catalog.Kind]catalog.Target {
	return map[catalog.Kind]catalog.Target{
		catalog.KindTunes: {
			Kind:      catalog.KindTunes,
			Root:      config.Resolve(projectDir, cfg.ContentDir),
			Extension: cfg.TuneExtension,
			Output:    config.Resolve(projectDir, cfg.TuneOutput),
		},
		catalog.KindDocs: {
			Kind:      catalog.KindDocs,
			Root:      config.Resolve(projectDir, cfg.DocsDir),
			Extension: cfg.DocsExtension,
			Output:    config.Resolve(projectDir, cfg.DocsOutput),
		},
	}
}
