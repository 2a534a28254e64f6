// Package catalog builds and serves the read-only index of available trainset
// assets. The index is constructed exactly once per run, either from a disk
// scan or from a persisted snapshot, and every resolution afterwards is a pure
// read against it.
package catalog

import (
	"strings"

	"github.com/openraildev/consistfix/internal/normalize"
)

// Kind identifies the two recognized asset kinds.
type Kind string

const (
	KindEngine Kind = "Engine"
	KindWagon  Kind = "Wagon"
)

// Extension returns the asset file extension for the kind, without the dot.
func (k Kind) Extension() string {
	if k == KindEngine {
		return "eng"
	}
	return "wag"
}

// KindForExtension maps a file extension (lowercase, no dot) to its Kind.
func KindForExtension(ext string) (Kind, bool) {
	switch ext {
	case "eng":
		return KindEngine, true
	case "wag":
		return KindWagon, true
	}
	return "", false
}

// AssetRecord describes one discovered asset file. Records are immutable after
// creation and owned exclusively by the index.
type AssetRecord struct {
	Kind           Kind
	Name           string
	Folder         string
	Path           string
	NormalizedName string
	Key            string
}

// MakeKey builds the case-folded composite lookup key for a folder/name pair.
func MakeKey(folder, name string) string {
	return strings.ToLower(folder) + "|" + strings.ToLower(name)
}

// NewRecord creates a record with its derived fields computed. Derived fields
// are never persisted; snapshots carry only Name/Folder/Path.
func NewRecord(kind Kind, name, folder, path string) AssetRecord {
	return AssetRecord{
		Kind:           kind,
		Name:           name,
		Folder:         folder,
		Path:           path,
		NormalizedName: normalize.Normalize(name),
		Key:            MakeKey(folder, name),
	}
}
