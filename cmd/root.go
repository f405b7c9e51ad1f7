package cmd

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ceer-dev/optimarketsrl/internal/catalog"
	"github.com/ceer-dev/optimarketsrl/internal/config"
)

func NewRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "optiprecio",
		Short: "Price quotation tool for optics resellers",
		Long: `Optiprecio indexes an optics price catalog (lenses, ready material,
blocks, frames) and resolves prices from free-text prescription measures.

It serves a small HTTP API for the quotation interface and offers one-shot
lookups from the terminal.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")

	// Add subcommands
	cmd.AddCommand(newServeCmd(&configPath))
	cmd.AddCommand(newSearchCmd(&configPath))
	cmd.AddCommand(newMaterialsCmd(&configPath))

	return cmd
}

// loadIndex loads the config, reads the catalog through the cache chain, and
// builds the index. Shared by every subcommand.
func loadIndex(configPath string) (*catalog.Index, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}

	loader := catalog.NewLoader(cfg.CatalogPath, cfg.CachePath, cfg.CacheTTL)
	rows, err := loader.Load()
	if err != nil {
		return nil, config.Config{}, err
	}

	start := time.Now()
	idx := catalog.Build(rows)
	slog.Debug("Catalog indexed", "entries", idx.Len(), "categories", len(idx.Categories()), "took", time.Since(start))

	return idx, cfg, nil
}
