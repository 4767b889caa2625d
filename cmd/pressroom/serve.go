package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pressroom-io/pressroom/internal/api"
	"github.com/pressroom-io/pressroom/internal/config"
	"github.com/pressroom-io/pressroom/internal/watcher"
)

var serveWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve [content-dir]",
	Short: "Build the corpus and serve the query API",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "rebuild when the content directory changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.ContentDir = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model, warnings, err := buildModel(ctx, cfg, log)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warn("ingestion warning", "origin", w.Origin, "segment", w.Segment, "error", w.Err)
	}

	holder := api.NewModelHolder(model)
	srv := api.NewServer(holder, log, cfg.APIKey)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if serveWatch {
		w, err := watcher.New(cfg.ContentDir, cfg.WatchDebounce, log, func() {
			m, warns, err := buildModel(ctx, cfg, log)
			if err != nil {
				// Keep serving the last good model.
				log.Error("rebuild failed", "error", err)
				return
			}
			for _, wrn := range warns {
				log.Warn("ingestion warning", "origin", wrn.Origin, "segment", wrn.Segment, "error", wrn.Err)
			}
			holder.Swap(m)
			log.Info("model rebuilt", "documents", m.Len(), "run_id", m.RunID())
		})
		if err != nil {
			return err
		}
		defer w.Close()
		go func() {
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("watcher stopped", "error", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("serving query api", "port", cfg.Port, "content_dir", cfg.ContentDir, "documents", model.Len())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
