// Package snapshots persists the per-league payloads the display layer
// consumes from disk.
package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

// Writer persists league payload snapshots plus a manifest.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WritePayload writes the league's payload snapshot, replacing the previous
// one atomically. A byte-identical payload only refreshes the manifest.
func (w *Writer) WritePayload(payload domain.Payload) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if payload.League == "" {
		return fmt.Errorf("league required")
	}

	target := PayloadPath(w.basePath, payload.League)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.touchManifest(payload.League)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.touchManifest(payload.League)
}

// ReadPayload loads a league's snapshot back, used to warm the cache at
// startup so a restart does not blank the display until the first poll.
func (w *Writer) ReadPayload(league domain.League) (domain.Payload, error) {
	var payload domain.Payload
	f, err := os.Open(PayloadPath(w.basePath, league))
	if err != nil {
		return payload, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return domain.Payload{}, err
	}
	return payload, nil
}

func (w *Writer) touchManifest(league domain.League) error {
	m := readManifest(filepath.Join(w.basePath, "manifest.json"))
	m.Leagues[string(league)] = time.Now().UTC()
	return writeManifest(w.basePath, m)
}
