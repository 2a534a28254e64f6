package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/openraildev/consistfix/pkg/logger"
)

//go:embed snapshot_schema.json
var snapshotSchema []byte

const snapshotVersion = "1.0.0"

// snapshotEntry is the persisted form of a record. Derived fields are
// recomputed on load, never stored.
type snapshotEntry struct {
	Name   string `json:"name"`
	Folder string `json:"folder"`
	Path   string `json:"path"`
}

type snapshotDoc struct {
	Version string          `json:"version"`
	Engines []snapshotEntry `json:"engines"`
	Wagons  []snapshotEntry `json:"wagons"`
}

// Save serializes the index record lists to a structured snapshot at path.
func Save(idx *AssetIndex, path string) error {
	doc := snapshotDoc{
		Version: snapshotVersion,
		Engines: make([]snapshotEntry, 0, len(idx.Engines)),
		Wagons:  make([]snapshotEntry, 0, len(idx.Wagons)),
	}
	for _, rec := range idx.Engines {
		doc.Engines = append(doc.Engines, snapshotEntry{Name: rec.Name, Folder: rec.Folder, Path: rec.Path})
	}
	for _, rec := range idx.Wagons {
		doc.Wagons = append(doc.Wagons, snapshotEntry{Name: rec.Name, Folder: rec.Folder, Path: rec.Path})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	logger.Info("Catalog snapshot saved",
		logger.String("path", path), logger.Int("records", idx.Len()))
	return nil
}

// Load deserializes a snapshot. A missing, malformed, or empty snapshot is a
// cache miss, not an error: the caller falls back to a fresh Build. The index
// performs no staleness detection on file contents, so snapshots must be
// invalidated manually when the asset tree changes.
func Load(path, defaultsFolder string) *AssetIndex {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied cache path
	if err != nil {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(snapshotSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil || !result.Valid() {
		logger.Warn("Catalog snapshot failed validation, rescanning",
			logger.String("path", path))
		return nil
	}

	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("Catalog snapshot unreadable, rescanning",
			logger.String("path", path), logger.Err(err))
		return nil
	}
	if len(doc.Engines) == 0 && len(doc.Wagons) == 0 {
		logger.Warn("Catalog snapshot is empty, rescanning", logger.String("path", path))
		return nil
	}

	engines := make([]AssetRecord, 0, len(doc.Engines))
	for _, e := range doc.Engines {
		engines = append(engines, NewRecord(KindEngine, e.Name, e.Folder, e.Path))
	}
	wagons := make([]AssetRecord, 0, len(doc.Wagons))
	for _, w := range doc.Wagons {
		wagons = append(wagons, NewRecord(KindWagon, w.Name, w.Folder, w.Path))
	}

	logger.Info("Catalog snapshot loaded",
		logger.String("path", path),
		logger.Int("engines", len(engines)),
		logger.Int("wagons", len(wagons)))

	return newIndex(engines, wagons, defaultsFolder)
}
