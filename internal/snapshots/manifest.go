package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks which league snapshots exist and when they last changed.
type Manifest struct {
	Version     int                  `json:"version"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Leagues     map[string]time.Time `json:"leagues"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version: 1,
		Leagues: map[string]time.Time{},
	}
}

func readManifest(path string) Manifest {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest()
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest()
	}
	if m.Leagues == nil {
		m.Leagues = map[string]time.Time{}
	}
	return m
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
