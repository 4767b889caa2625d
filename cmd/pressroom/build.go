package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pressroom-io/pressroom/internal/config"
	"github.com/pressroom-io/pressroom/internal/corpus"
	"github.com/pressroom-io/pressroom/internal/loader"
)

var buildStrict bool

var buildCmd = &cobra.Command{
	Use:   "build [content-dir]",
	Short: "Ingest the corpus once and report the result",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "fail when any warning is reported")
}

func runBuild(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.ContentDir = args[0]
	}

	model, warnings, err := buildModel(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ingested %d documents, %d relation edges, %d warnings (run %s)\n",
		model.Len(), len(model.Edges()), len(warnings), model.RunID())

	if buildStrict && len(warnings) > 0 {
		return fmt.Errorf("%d warnings reported with --strict set", len(warnings))
	}
	return nil
}

// buildModel runs discovery and ingestion with the configured options.
func buildModel(ctx context.Context, cfg config.Config, log *slog.Logger) (*corpus.Model, []corpus.Warning, error) {
	l := loader.New(os.DirFS(cfg.ContentDir), loader.Config{
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})
	raws, err := l.Discover(ctx)
	if err != nil {
		return nil, nil, err
	}

	ingestor := corpus.NewIngestor(corpus.Options{
		Workers:     cfg.Workers,
		StrictSlugs: cfg.StrictSlugs,
		Logger:      log,
	})
	return ingestor.Ingest(ctx, raws)
}
