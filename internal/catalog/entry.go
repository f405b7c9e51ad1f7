package catalog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ceer-dev/optimarketsrl/internal/measure"
)

// Entry is one price row of the catalog. Entries are immutable once loaded.
// Measure keeps the catalog-authored formatting (trimmed only); it is the
// right-hand side of all matching.
type Entry struct {
	ID             string   `json:"id"`
	Category       string   `json:"categoria"`
	SubMaterial    string   `json:"nombre"`
	Measure        string   `json:"medida"`
	PriceInvoiced  float64  `json:"cf"`
	PriceNoInvoice *float64 `json:"sf"`
}

// HasNoInvoicePrice reports whether the entry carries a "sin factura" price
// tier. Absence is meaningful: callers must not render that affordance.
func (e Entry) HasNoInvoicePrice() bool {
	return e.PriceNoInvoice != nil
}

// ErrMalformedRow marks a catalog row missing every resolvable category and
// name field. Such rows are skipped, never aborting the batch.
var ErrMalformedRow = errors.New("catalog: malformed row")

// The source data spells its columns inconsistently ("Categoria" vs
// "categoria", "# idPrecio" vs "idPrecio", ...). Each logical field resolves
// through an ordered candidate-key chain with a default, applied uniformly at
// ingestion.
var (
	categoryChain = fieldChain{keys: []string{"Categoria", "categoria"}, def: measure.CategoryOther}
	nameChain     = fieldChain{keys: []string{"Subcategoria", "subcategoria", "nombre"}, def: "Sin Nombre"}
	measureChain  = fieldChain{keys: []string{"medida"}, def: "Única"}
	idChain       = fieldChain{keys: []string{"# idPrecio", "idPrecio"}}
	cfChain       = fieldChain{keys: []string{"CF", "cf"}}
	sfChain       = fieldChain{keys: []string{"SF", "sf"}}
)

type fieldChain struct {
	keys []string
	def  string
}

// resolveString walks the candidate keys in order and returns the first
// non-empty trimmed string value, falling back to the chain default.
func (c fieldChain) resolveString(row map[string]any) (string, bool) {
	for _, k := range c.keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(stringify(v)); s != "" {
			return s, true
		}
	}
	return c.def, false
}

// resolveNumber returns the first candidate that parses as a number. The
// source data carries prices as both JSON numbers and strings.
func (c fieldChain) resolveNumber(row map[string]any) (float64, bool) {
	for _, k := range c.keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		if f, ok := numberOf(v); ok {
			return f, true
		}
	}
	return 0, false
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

func numberOf(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// parseRow resolves one raw catalog row into an Entry. A row where neither a
// category nor a name candidate resolves is malformed. Rows without an id get
// a synthetic one; synthetic ids are unique per load and never compared
// across reloads.
func parseRow(row map[string]any) (Entry, error) {
	cat, hasCat := categoryChain.resolveString(row)
	name, hasName := nameChain.resolveString(row)
	if !hasCat && !hasName {
		return Entry{}, ErrMalformedRow
	}

	med, _ := measureChain.resolveString(row)

	id, hasID := idChain.resolveString(row)
	if !hasID {
		id = uuid.NewString()
	}

	cf, _ := cfChain.resolveNumber(row)

	var sf *float64
	if v, ok := sfChain.resolveNumber(row); ok {
		sf = &v
	}

	return Entry{
		ID:             id,
		Category:       cat,
		SubMaterial:    name,
		Measure:        med,
		PriceInvoiced:  cf,
		PriceNoInvoice: sf,
	}, nil
}
