package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "pressroom",
	Short: "Static publishing corpus pipeline",
	Long: `pressroom ingests a corpus of frontmatter-headed documents, resolves
slugs, recovers split documents and their relations, and builds the
chronological, tag, and related-document indexes. The result is served
through a read-only JSON query API for downstream site assembly.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to TOML config file")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit JSON logs")
	rootCmd.AddCommand(buildCmd, serveCmd)
}

func newLogger() *slog.Logger {
	if logJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
