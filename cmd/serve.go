package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/ceer-dev/optimarketsrl/internal/handlers"
)

func newServeCmd(configPath *string) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the quotation HTTP API",
		Long: `Starts the Optiprecio API on the specified port.

The API exposes the catalog categories and materials, price search, and the
session cart used by the quotation interface.`,
		Example: `  # Start server on default port 8888
  optiprecio serve

  # Start server on custom port
  optiprecio serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			index, cfg, err := loadIndex(*configPath)
			if err != nil {
				return err
			}

			handler := handlers.New(index, cfg)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/categories", handler.HandleCategories)
			mux.HandleFunc("/api/materials", handler.HandleMaterials)
			mux.HandleFunc("/api/search", handler.HandleSearch)
			mux.HandleFunc("/api/cart", handler.HandleCart)
			mux.HandleFunc("/api/cart/lines", handler.HandleCartLines)
			mux.HandleFunc("/api/cart/lines/", handler.HandleCartLineDetail)
			mux.HandleFunc("/api/order", handler.HandleOrder)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			// The quotation page may be served from another origin (or from
			// a local file), so the API answers cross-origin requests.
			corsHandler := cors.New(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type"},
			}).Handler(mux)

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: corsHandler,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Optiprecio API available", "addr", addr, "entries", index.Len())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")

	return cmd
}
