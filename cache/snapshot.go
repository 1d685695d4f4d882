package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/ZaguanLabs/frontkit"
)

// SnapshotVersion is written into every snapshot.
const SnapshotVersion = "1"

// FileStore is the subset of file access snapshots need.
type FileStore interface {
	Exists(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte) error
}

// Snapshot is the JSON form of an in-memory cache.
type Snapshot struct {
	Version string          `json:"version"`
	SavedAt string          `json:"saved_at"`
	Entries []SnapshotEntry `json:"entries"`
}

// SnapshotEntry represents a single cache entry. StoredAt is RFC 3339.
type SnapshotEntry struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	StoredAt string `json:"stored_at,omitempty"`
}

// restorer is implemented by caches that can keep an entry's original age.
type restorer interface {
	Restore(key, value string, storedAt time.Time) bool
}

// WriteSnapshot writes the live entries of c as JSON, sorted by key.
func WriteSnapshot(w io.Writer, c *InMemoryCache) error {
	items := c.Items()
	entries := make([]SnapshotEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, SnapshotEntry{
			Key:      it.Key,
			Value:    it.Value,
			StoredAt: it.StoredAt.UTC().Format(time.RFC3339Nano),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshot{
		Version: SnapshotVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Entries: entries,
	}); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads snapshot entries into c and returns how many were
// stored. When c can restore entry ages, entries already past its TTL are
// skipped.
func ReadSnapshot(r io.Reader, c TranslationCache) (int, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return 0, fmt.Errorf("unsupported snapshot version %q", snap.Version)
	}

	rs, canRestore := c.(restorer)

	n := 0
	for _, entry := range snap.Entries {
		if canRestore && entry.StoredAt != "" {
			at, err := time.Parse(time.RFC3339Nano, entry.StoredAt)
			if err != nil {
				return n, fmt.Errorf("snapshot entry %q: %w", entry.Key, err)
			}
			if rs.Restore(entry.Key, entry.Value, at) {
				n++
			}
			continue
		}
		if err := c.Set(entry.Key, entry.Value); err != nil {
			return n, &frontkit.CacheError{Message: "restoring snapshot entry " + entry.Key, Cause: err}
		}
		n++
	}
	return n, nil
}

// LoadSnapshotFile reads path into c. A missing file loads nothing.
func LoadSnapshotFile(ctx context.Context, store FileStore, path string, c TranslationCache) (int, error) {
	ok, err := store.Exists(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("checking snapshot %s: %w", path, err)
	}
	if !ok {
		return 0, nil
	}

	data, err := store.ReadFile(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	return ReadSnapshot(strings.NewReader(string(data)), c)
}

// SaveSnapshotFile writes the entries of c to path.
func SaveSnapshotFile(ctx context.Context, store FileStore, path string, c *InMemoryCache) error {
	var buf strings.Builder
	if err := WriteSnapshot(&buf, c); err != nil {
		return err
	}
	if err := store.WriteFile(ctx, path, []byte(buf.String())); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}
