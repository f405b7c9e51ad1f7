package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ceer-dev/optimarketsrl/internal/cart"
	"github.com/ceer-dev/optimarketsrl/internal/catalog"
	"github.com/ceer-dev/optimarketsrl/internal/config"
	"github.com/ceer-dev/optimarketsrl/internal/search"
)

// Handler owns the catalog index, the session cart, and the snapshot store.
// The cart is single-writer state (one reseller, one session); the mutex
// serializes HTTP mutations, and every mutation is followed by a snapshot
// write.
type Handler struct {
	index   *catalog.Index
	matcher *search.Matcher
	cfg     config.Config

	mu    sync.Mutex
	cart  *cart.Cart
	store *cart.Store
}

func New(index *catalog.Index, cfg config.Config) *Handler {
	store := cart.NewStore(cfg.CartPath)
	return &Handler{
		index:   index,
		matcher: search.New(index),
		cfg:     cfg,
		cart:    store.Load(),
		store:   store,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}
