package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ceer-dev/optimarketsrl/internal/cart"
	"github.com/ceer-dev/optimarketsrl/internal/catalog"
	"github.com/ceer-dev/optimarketsrl/internal/order"
)

type cartLineView struct {
	Index    int     `json:"index"`
	Entry    any     `json:"entry"`
	Qty      int     `json:"qty"`
	Label    string  `json:"label"`
	Subtotal float64 `json:"subtotal"`
}

type cartView struct {
	Lines      []cartLineView `json:"lines"`
	GrandTotal float64        `json:"grand_total"`
	BadgeCount int            `json:"badge_count"`
}

func (h *Handler) cartSnapshot() cartView {
	lines := h.cart.Lines()
	view := cartView{
		Lines:      make([]cartLineView, 0, len(lines)),
		GrandTotal: h.cart.GrandTotal(),
		BadgeCount: h.cart.BadgeCount(),
	}
	for i, l := range lines {
		view.Lines = append(view.Lines, cartLineView{
			Index:    i,
			Entry:    l.Entry,
			Qty:      l.Qty,
			Label:    cart.QuantityLabel(l.Entry.Category, l.Qty),
			Subtotal: cart.Subtotal(l),
		})
	}
	return view
}

// HandleCart serves the cart state and handles en-masse clearing.
func (h *Handler) HandleCart(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch r.Method {
	case "GET":
		h.writeJSON(w, h.cartSnapshot())
	case "DELETE":
		h.cart.Clear()
		h.store.Save(h.cart)
		h.writeJSON(w, h.cartSnapshot())
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type addLineRequest struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`

	// Alternative to id: the same fields /api/search takes, resolved inline.
	Category string `json:"category"`
	Material string `json:"material"`
	Measure  string `json:"measure"`
	Adds     string `json:"adds"`
	Base     string `json:"base"`
	Code     string `json:"code"`
}

// HandleCartLines adds a cart line, either for an already-resolved entry id or
// by resolving search fields inline. Adding an id already in the cart
// increments that line instead of duplicating it.
func (h *Handler) HandleCartLines(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req addLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	var entry catalog.Entry
	switch {
	case req.ID != "":
		var ok bool
		entry, ok = h.index.EntryByID(req.ID)
		if !ok {
			h.writeError(w, "Unknown entry id", http.StatusNotFound)
			return
		}
	case req.Category != "":
		var ok bool
		entry, ok = h.resolveSearch(w, searchRequest{
			Category: req.Category,
			Material: req.Material,
			Measure:  req.Measure,
			Adds:     req.Adds,
			Base:     req.Base,
			Code:     req.Code,
		})
		if !ok {
			return
		}
	default:
		h.writeError(w, "id or search fields are required", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.cart.AddLine(entry, req.Qty)
	h.store.Save(h.cart)
	h.writeJSON(w, h.cartSnapshot())
}

type updateLineRequest struct {
	Delta int `json:"delta"`
}

// HandleCartLineDetail updates or removes one line, addressed by index.
func (h *Handler) HandleCartLineDetail(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/cart/lines/")
	index, err := strconv.Atoi(raw)
	if err != nil {
		h.writeError(w, "Invalid line index", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if index < 0 || index >= h.cart.Len() {
		h.writeError(w, "Line not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case "PATCH":
		var req updateLineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		h.cart.UpdateQuantity(index, req.Delta)
	case "DELETE":
		h.cart.RemoveLine(index)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.store.Save(h.cart)
	h.writeJSON(w, h.cartSnapshot())
}

type orderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// HandleOrder finalizes the quotation: it renders the order text, returns the
// wa.me link, and clears the cart.
func (h *Handler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cart.Len() == 0 {
		h.writeError(w, "El pedido está vacío", http.StatusUnprocessableEntity)
		return
	}

	message := order.Message(h.cfg.ShopName, req.PaymentMethod, h.cart.Lines(), time.Now())
	url := order.WhatsAppURL(h.cfg.WhatsAppCell, message)

	h.cart.Clear()
	h.store.Save(h.cart)

	h.writeJSON(w, map[string]any{
		"message":      message,
		"whatsapp_url": url,
	})
}
