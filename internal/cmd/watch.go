package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harrison/tunecat/internal/catalog"
	"github.com/harrison/tunecat/internal/watcher"
)

// NewWatchCommand creates the watch subcommand
func NewWatchCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate catalogs whenever tunes or docs change",
		Long: `Generate both catalogs, then watch the tune and docs directories and
regenerate the affected catalog after each burst of changes.

Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchWithOutput(ctx, opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

// watchWithOutput runs the watch loop until ctx is cancelled
func watchWithOutput(ctx context.Context, opts *rootOptions, out io.Writer) error {
	projectDir, cfg, err := opts.load()
	if err != nil {
		return err
	}
	log := newLogger(out, cfg)

	// Initial pass also bootstraps both roots so they can be watched
	generateCatalogs(projectDir, cfg, catalog.Kinds(), log)

	all := targets(projectDir, cfg)
	sources := make([]watcher.Source, 0, len(all))
	for _, kind := range catalog.Kinds() {
		t := all[kind]
		sources = append(sources, watcher.Source{Kind: kind, Root: t.Root, Extension: t.Extension})
	}

	w, err := watcher.New(sources, cfg.WatchDebounce)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	log.LogInfo(fmt.Sprintf("Watching %s and %s for changes", cfg.ContentDir, cfg.DocsDir))

	watchLoop(ctx, w.Changes(), w.Errors(), log, func(kind catalog.Kind) {
		generateCatalogs(projectDir, cfg, []catalog.Kind{kind}, log)
	})

	log.LogInfo("Stopped watching")
	return nil
}

// watchLoop dispatches change notifications to regenerate until ctx is done
// or the change channel closes.
func watchLoop(ctx context.Context, changes <-chan catalog.Kind, errs <-chan error, log catalog.Logger, regenerate func(catalog.Kind)) {
	for {
		select {
		case <-ctx.Done():
			return
		case kind, ok := <-changes:
			if !ok {
				return
			}
			log.LogDebug(fmt.Sprintf("%s changed", kind))
			regenerate(kind)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.LogWarn(fmt.Sprintf("Watch error: %v", err))
		}
	}
}
