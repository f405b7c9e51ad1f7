package measure

import (
	"fmt"
	"strings"
)

// Category names as they appear in the price catalog.
const (
	CategoryLens  = "Lentilla"
	CategoryReady = "Material Listo"
	CategoryBlock = "Block"
	CategoryFrame = "Montura"
	CategoryOther = "Otros"
)

// ValidationError reports a required search field the user left empty. It is
// raised before any normalization runs.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is empty", e.Field)
}

// Query is the per-category search shape. Each category builds its lookup key
// differently, so the shapes are distinct types rather than one string bag;
// a type switch over Query covers all four categories.
type Query interface {
	// Category returns the catalog category this query targets.
	Category() string
	// Validate checks the raw fields before normalization.
	Validate() error
	// Key returns the canonical composite key built from the raw fields.
	// Frame queries have no composite key (see FrameQuery).
	Key() string
	// Matches reports whether a catalog-stored measure satisfies the query.
	// The stored side passes through the same normalization as the query
	// side, so both are always comparable.
	Matches(stored string) bool
}

// storedKey normalizes a catalog measure and completes the schema label when
// the catalog author left it off ("+1.25" and "Medida: +1.25" both index the
// same lens measure).
func storedKey(label, stored string) string {
	k := Normalize(stored)
	if !strings.HasPrefix(k, label) {
		// Re-normalize after completion: a bare "cil -0.50" keeps its token
		// space until the label changes what the string starts with.
		k = Normalize(label + k)
	}
	return k
}

// LensQuery matches Lentilla entries by a single normalized measure.
type LensQuery struct {
	Measure string
}

func (q LensQuery) Category() string { return CategoryLens }

func (q LensQuery) Validate() error {
	if strings.TrimSpace(q.Measure) == "" {
		return &ValidationError{Field: "medida"}
	}
	return nil
}

// Key composes the label with the normalized measure, then normalizes the
// whole key once more so authored spacing around the label never matters.
// Normalize is idempotent, so the second pass is safe.
func (q LensQuery) Key() string {
	return Normalize("medida:" + Normalize(q.Measure))
}

func (q LensQuery) Matches(stored string) bool {
	return storedKey("medida:", stored) == q.Key()
}

// ReadyQuery matches Material Listo entries by measure plus addition.
type ReadyQuery struct {
	Measure string
	Adds    string
}

func (q ReadyQuery) Category() string { return CategoryReady }

func (q ReadyQuery) Validate() error {
	if strings.TrimSpace(q.Measure) == "" {
		return &ValidationError{Field: "medida"}
	}
	if strings.TrimSpace(q.Adds) == "" {
		return &ValidationError{Field: "adds"}
	}
	return nil
}

func (q ReadyQuery) Key() string {
	return Normalize("medida:" + Normalize(q.Measure) + "_adds:" + Normalize(q.Adds))
}

func (q ReadyQuery) Matches(stored string) bool {
	return storedKey("medida:", stored) == q.Key()
}

// BlockQuery matches Block entries by base curve plus integer addition. The
// base is used as typed (trimmed); the addition uses the Block-specific
// integer normalization.
type BlockQuery struct {
	Base string
	Adds string
}

func (q BlockQuery) Category() string { return CategoryBlock }

func (q BlockQuery) Validate() error {
	if strings.TrimSpace(q.Base) == "" {
		return &ValidationError{Field: "base"}
	}
	if strings.TrimSpace(q.Adds) == "" {
		return &ValidationError{Field: "adds"}
	}
	return nil
}

func (q BlockQuery) Key() string {
	key := "base:" + strings.TrimSpace(q.Base) + "_adds:" + NormalizeBlockAdds(q.Adds)
	return strings.ToLower(key)
}

func (q BlockQuery) Matches(stored string) bool {
	return storedKey("base:", stored) == q.Key()
}

// FrameQuery matches Montura entries by frame code. Unlike the other shapes
// it is not an exact-key match: the trimmed code is looked up as a
// case-insensitive substring of the stored measure field.
type FrameQuery struct {
	Code string
}

func (q FrameQuery) Category() string { return CategoryFrame }

func (q FrameQuery) Validate() error {
	if strings.TrimSpace(q.Code) == "" {
		return &ValidationError{Field: "codigo"}
	}
	return nil
}

// Key returns the trimmed, lowercased code used for the substring scan.
func (q FrameQuery) Key() string {
	return strings.ToLower(strings.TrimSpace(q.Code))
}

// Matches does a case-insensitive substring scan of the raw stored measure;
// frame codes are matched loosely by design.
func (q FrameQuery) Matches(stored string) bool {
	return strings.Contains(strings.ToLower(stored), q.Key())
}

// Fields carries the raw per-category inputs as typed by the user.
type Fields struct {
	Measure string
	Adds    string
	Base    string
	Code    string
}

// NewQuery picks the query shape for a category. Unknown categories are an
// error so every caller covers the full set.
func NewQuery(category string, f Fields) (Query, error) {
	switch category {
	case CategoryLens:
		return LensQuery{Measure: f.Measure}, nil
	case CategoryReady:
		return ReadyQuery{Measure: f.Measure, Adds: f.Adds}, nil
	case CategoryBlock:
		return BlockQuery{Base: f.Base, Adds: f.Adds}, nil
	case CategoryFrame:
		return FrameQuery{Code: f.Code}, nil
	default:
		return nil, fmt.Errorf("unknown category %q", category)
	}
}
