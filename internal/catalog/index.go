package catalog

import (
	"log/slog"
	"sort"
)

// Index is the queryable structure over the price catalog: category →
// sub-material → ordered entries. Every entry lives in exactly one bucket,
// determined by its own fields; insertion order within a bucket is preserved
// because matching is exact-key, never ranked.
type Index struct {
	buckets map[string]map[string][]Entry
	byID    map[string]Entry
	total   int
}

// Build indexes the raw catalog rows. Malformed rows are skipped and counted;
// a single bad row never aborts the build. Build does no I/O.
func Build(rows []map[string]any) *Index {
	idx := &Index{
		buckets: make(map[string]map[string][]Entry),
		byID:    make(map[string]Entry),
	}

	skipped := 0
	for _, row := range rows {
		entry, err := parseRow(row)
		if err != nil {
			skipped++
			continue
		}

		byName, ok := idx.buckets[entry.Category]
		if !ok {
			byName = make(map[string][]Entry)
			idx.buckets[entry.Category] = byName
		}
		byName[entry.SubMaterial] = append(byName[entry.SubMaterial], entry)
		idx.byID[entry.ID] = entry
		idx.total++
	}

	if skipped > 0 {
		slog.Warn("Skipped malformed catalog rows", "skipped", skipped, "indexed", idx.total)
	}

	return idx
}

// Categories returns the category names present in the catalog, sorted.
func (idx *Index) Categories() []string {
	cats := make([]string, 0, len(idx.buckets))
	for cat := range idx.buckets {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// SubMaterials returns the sub-material names under a category in lexical
// ascending order. The sort is locale-naive and deterministic across calls;
// it drives suggestion lists.
func (idx *Index) SubMaterials(category string) []string {
	byName, ok := idx.buckets[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the entry list for a (category, sub-material) bucket in
// first-seen order. An absent bucket yields an empty list, not an error.
func (idx *Index) Entries(category, subMaterial string) []Entry {
	byName, ok := idx.buckets[category]
	if !ok {
		return nil
	}
	return byName[subMaterial]
}

// EntryByID finds an entry by its id. Ids are unique within one load.
func (idx *Index) EntryByID(id string) (Entry, bool) {
	e, ok := idx.byID[id]
	return e, ok
}

// Len returns the total number of indexed entries across all buckets.
func (idx *Index) Len() int {
	return idx.total
}
