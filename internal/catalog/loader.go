package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
)

// Loader reads raw catalog rows from disk. The source may be a JSON array,
// JSONL, or Parquet; a JSON cache file in front of the source avoids
// re-parsing large catalogs on every start.
type Loader struct {
	sourcePath string
	cachePath  string
	cacheTTL   time.Duration
}

// NewLoader creates a loader for the given source file. cachePath may be
// empty to disable caching.
func NewLoader(sourcePath, cachePath string, cacheTTL time.Duration) *Loader {
	return &Loader{
		sourcePath: sourcePath,
		cachePath:  cachePath,
		cacheTTL:   cacheTTL,
	}
}

// Load returns the raw catalog rows, trying the cache first and falling back
// to the source file. A cache that fails to parse is discarded and treated as
// a miss; a cache that fails to write is logged and ignored. Only a source
// failure is an error.
func (l *Loader) Load() ([]map[string]any, error) {
	if rows, ok := l.loadCache(); ok {
		return rows, nil
	}

	rows, err := l.loadSource()
	if err != nil {
		return nil, err
	}

	l.writeCache(rows)
	return rows, nil
}

func (l *Loader) loadCache() ([]map[string]any, bool) {
	if l.cachePath == "" {
		return nil, false
	}

	info, err := os.Stat(l.cachePath)
	if err != nil {
		return nil, false
	}
	if l.cacheTTL > 0 && time.Since(info.ModTime()) > l.cacheTTL {
		slog.Debug("Catalog cache expired", "path", l.cachePath, "age", time.Since(info.ModTime()))
		return nil, false
	}

	data, err := os.ReadFile(l.cachePath)
	if err != nil {
		return nil, false
	}

	rows, err := decodeRows(data)
	if err != nil {
		// Corrupt cache is a miss: discard and fall through to the source.
		slog.Warn("Catalog cache corrupt, discarding", "path", l.cachePath, "err", err)
		_ = os.Remove(l.cachePath)
		return nil, false
	}

	slog.Debug("Catalog loaded from cache", "path", l.cachePath, "rows", len(rows))
	return rows, true
}

func (l *Loader) writeCache(rows []map[string]any) {
	if l.cachePath == "" {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		slog.Warn("Unable to encode catalog cache", "err", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(l.cachePath), 0755); err != nil {
		slog.Warn("Unable to create cache directory", "err", err)
		return
	}
	if err := os.WriteFile(l.cachePath, data, 0644); err != nil {
		// Quota or permission trouble must not block the session.
		slog.Warn("Unable to write catalog cache", "path", l.cachePath, "err", err)
	}
}

func (l *Loader) loadSource() ([]map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(l.sourcePath))

	switch ext {
	case ".parquet":
		return l.loadParquet()
	case ".jsonl":
		return l.loadJSONL()
	case ".json":
		return l.loadJSON()
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s (supported: .json, .jsonl, .parquet)", ext)
	}
}

// loadJSON reads a whole-file JSON array of rows.
func (l *Loader) loadJSON() ([]map[string]any, error) {
	data, err := os.ReadFile(l.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	slog.Debug("Catalog loaded from JSON", "path", l.sourcePath, "rows", len(rows))
	return rows, nil
}

// decodeRows parses a JSON array of rows. Elements that are not objects are
// skipped with a warning, the same way Build skips rows missing every name
// field; only a broken outer array is an error.
func decodeRows(data []byte) ([]map[string]any, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(raw))
	skipped := 0
	for i, msg := range raw {
		var row map[string]any
		if err := json.Unmarshal(msg, &row); err != nil {
			skipped++
			slog.Warn("Skipping non-object catalog element", "index", i, "err", err)
			continue
		}
		rows = append(rows, row)
	}

	if skipped > 0 {
		slog.Warn("Skipped non-object catalog elements", "skipped", skipped, "kept", len(rows))
	}
	return rows, nil
}

// loadJSONL reads one row per line. Lines that fail to parse are skipped with
// a warning rather than aborting the batch.
func (l *Loader) loadJSONL() ([]map[string]any, error) {
	file, err := os.Open(l.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var rows []map[string]any
	scanner := bufio.NewScanner(file)

	const maxCapacity = 1024 * 1024 // 1MB per line
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var row map[string]any
		if err := json.Unmarshal(line, &row); err != nil {
			slog.Warn("Skipping unparsable catalog line", "line", lineNum, "err", err)
			continue
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	slog.Debug("Catalog loaded from JSONL", "path", l.sourcePath, "rows", len(rows), "lines", lineNum)
	return rows, nil
}

// parquetRow mirrors the canonical catalog columns. Exports of the price
// sheet to Parquet use the capitalized spellings only.
type parquetRow struct {
	IDPrecio     string   `parquet:"idPrecio,optional"`
	Categoria    string   `parquet:"Categoria,optional"`
	Subcategoria string   `parquet:"Subcategoria,optional"`
	Medida       string   `parquet:"medida,optional"`
	CF           float64  `parquet:"CF,optional"`
	SF           *float64 `parquet:"SF,optional"`
}

func (l *Loader) loadParquet() ([]map[string]any, error) {
	file, err := os.Open(l.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet catalog opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[parquetRow](pf)
	defer reader.Close()

	var rows []map[string]any
	batch := make([]parquetRow, 128)

	for {
		n, err := reader.Read(batch)
		for _, r := range batch[:n] {
			row := map[string]any{
				"idPrecio":     r.IDPrecio,
				"Categoria":    r.Categoria,
				"Subcategoria": r.Subcategoria,
				"medida":       r.Medida,
				"CF":           r.CF,
			}
			if r.SF != nil {
				row["SF"] = *r.SF
			}
			rows = append(rows, row)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Catalog loaded from Parquet", "path", l.sourcePath, "rows", len(rows))
	return rows, nil
}
