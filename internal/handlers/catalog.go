package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ceer-dev/optimarketsrl/internal/catalog"
	"github.com/ceer-dev/optimarketsrl/internal/measure"
	"github.com/ceer-dev/optimarketsrl/internal/search"
)

func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, map[string]any{"categories": h.index.Categories()})
}

// HandleMaterials serves the sorted sub-material names for a category,
// feeding the suggestion list in the quotation form.
func (h *Handler) HandleMaterials(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		h.writeError(w, "category is required", http.StatusBadRequest)
		return
	}

	materials := h.index.SubMaterials(category)
	if materials == nil {
		materials = []string{}
	}
	h.writeJSON(w, map[string]any{"category": category, "materials": materials})
}

type searchRequest struct {
	Category string `json:"category"`
	Material string `json:"material"`
	Measure  string `json:"measure"`
	Adds     string `json:"adds"`
	Base     string `json:"base"`
	Code     string `json:"code"`
}

// HandleSearch resolves one catalog entry for the posted fields. Validation
// failures come back as 422 so the form can highlight the missing field;
// an unmatched query is a plain 404 the user retries with corrected input.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	entry, ok := h.resolveSearch(w, req)
	if !ok {
		return
	}

	h.writeJSON(w, map[string]any{
		"entry": entry,
		"hint":  categoryHint(entry.Category),
	})
}

// resolveSearch runs the shared validate-and-resolve path for /api/search and
// the search-fields variant of /api/cart/lines. On failure the response is
// already written and ok is false.
func (h *Handler) resolveSearch(w http.ResponseWriter, req searchRequest) (catalog.Entry, bool) {
	q, err := measure.NewQuery(req.Category, measure.Fields{
		Measure: req.Measure,
		Adds:    req.Adds,
		Base:    req.Base,
		Code:    req.Code,
	})
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return catalog.Entry{}, false
	}

	if req.Category != measure.CategoryFrame && req.Material == "" {
		h.writeError(w, "material is required", http.StatusUnprocessableEntity)
		return catalog.Entry{}, false
	}

	entry, err := h.matcher.Resolve(q, req.Material)
	var verr *measure.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeError(w, verr.Error(), http.StatusUnprocessableEntity)
		return catalog.Entry{}, false
	case errors.Is(err, search.ErrNotFound):
		h.writeError(w, "No se encontraron productos", http.StatusNotFound)
		return catalog.Entry{}, false
	case err != nil:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return catalog.Entry{}, false
	}

	return entry, true
}

// categoryHint is the per-unit wording shown next to a resolved price.
func categoryHint(category string) string {
	switch category {
	case measure.CategoryLens:
		return "Precio por unidad"
	case measure.CategoryReady, measure.CategoryBlock:
		return "2 unidades = 1 par"
	default:
		return ""
	}
}
