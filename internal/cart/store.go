package cart

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ceer-dev/optimarketsrl/internal/catalog"
)

// snapshotLine is the on-disk shape of one cart line: the full entry fields
// plus qty. Round-tripping is lossless for every entry field.
type snapshotLine struct {
	catalog.Entry
	Qty int `json:"qty"`
}

// Store persists cart snapshots to a JSON file so the session survives a
// reload. Writes happen after every cart mutation; a failed write is a
// warning, never a blocker — the in-memory cart stays authoritative.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted snapshot into a fresh cart. A missing file means
// an empty cart; an unparsable file is discarded as corrupt and also yields
// an empty cart.
func (s *Store) Load() *Cart {
	c := New()
	if s.path == "" {
		return c
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Unable to read cart snapshot", "path", s.path, "err", err)
		}
		return c
	}

	var lines []snapshotLine
	if err := json.Unmarshal(data, &lines); err != nil {
		slog.Warn("Cart snapshot corrupt, starting empty", "path", s.path, "err", err)
		return c
	}

	for _, l := range lines {
		c.AddLine(l.Entry, l.Qty)
	}
	return c
}

// Save writes the current cart snapshot. Failures are logged at warn level;
// the caller continues with the in-memory cart.
func (s *Store) Save(c *Cart) {
	if s.path == "" {
		return
	}

	lines := c.Lines()
	snapshot := make([]snapshotLine, 0, len(lines))
	for _, l := range lines {
		snapshot = append(snapshot, snapshotLine{Entry: l.Entry, Qty: l.Qty})
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		slog.Warn("Unable to encode cart snapshot", "err", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		slog.Warn("Unable to create cart snapshot directory", "err", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		slog.Warn("Unable to write cart snapshot", "path", s.path, "err", err)
	}
}
