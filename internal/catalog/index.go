package catalog

import "strings"

// AssetIndex is the in-memory catalog. Every record reachable from Engines or
// Wagons is also reachable from all three lookup maps. The index is read-only
// after construction.
type AssetIndex struct {
	Engines []AssetRecord
	Wagons  []AssetRecord

	byExactKey       map[string]*AssetRecord
	byFolder         map[string][]*AssetRecord
	byNormalizedName map[string][]*AssetRecord

	defaultsFolder string // lowercase
}

// newIndex wires the lookup maps over fully-populated record lists. The lists
// must not grow afterwards: the maps hold pointers into them.
func newIndex(engines, wagons []AssetRecord, defaultsFolder string) *AssetIndex {
	idx := &AssetIndex{
		Engines:          engines,
		Wagons:           wagons,
		byExactKey:       make(map[string]*AssetRecord, len(engines)+len(wagons)),
		byFolder:         make(map[string][]*AssetRecord),
		byNormalizedName: make(map[string][]*AssetRecord),
		defaultsFolder:   strings.ToLower(defaultsFolder),
	}
	for i := range idx.Engines {
		idx.register(&idx.Engines[i])
	}
	for i := range idx.Wagons {
		idx.register(&idx.Wagons[i])
	}
	return idx
}

func (idx *AssetIndex) register(rec *AssetRecord) {
	// First-seen wins on key collisions, matching scan order determinism
	if _, dup := idx.byExactKey[rec.Key]; !dup {
		idx.byExactKey[rec.Key] = rec
	}
	folder := strings.ToLower(rec.Folder)
	idx.byFolder[folder] = append(idx.byFolder[folder], rec)
	idx.byNormalizedName[rec.NormalizedName] = append(idx.byNormalizedName[rec.NormalizedName], rec)
}

// DefaultsFolder returns the configured defaults folder name (lowercase).
func (idx *AssetIndex) DefaultsFolder() string {
	return idx.defaultsFolder
}

// Lookup returns the record for an exact folder/name key, or nil.
func (idx *AssetIndex) Lookup(folder, name string) *AssetRecord {
	return idx.byExactKey[MakeKey(folder, name)]
}

// Contains reports whether the exact folder/name pair exists in the catalog.
func (idx *AssetIndex) Contains(folder, name string) bool {
	return idx.Lookup(folder, name) != nil
}

// InFolder returns all records in the named folder (case-insensitive).
func (idx *AssetIndex) InFolder(folder string) []*AssetRecord {
	return idx.byFolder[strings.ToLower(folder)]
}

// ByNormalizedName returns all records whose normalized name equals name.
func (idx *AssetIndex) ByNormalizedName(name string) []*AssetRecord {
	return idx.byNormalizedName[name]
}

// FolderPool returns same-folder candidates of the given kind.
func (idx *AssetIndex) FolderPool(kind Kind, folder string) []*AssetRecord {
	var pool []*AssetRecord
	for _, rec := range idx.InFolder(folder) {
		if rec.Kind == kind {
			pool = append(pool, rec)
		}
	}
	return pool
}

// GlobalPool returns all records of the given kind excluding the defaults
// folder, in catalog order.
func (idx *AssetIndex) GlobalPool(kind Kind) []*AssetRecord {
	records := idx.records(kind)
	pool := make([]*AssetRecord, 0, len(records))
	for i := range records {
		if strings.ToLower(records[i].Folder) == idx.defaultsFolder {
			continue
		}
		pool = append(pool, &records[i])
	}
	return pool
}

// DefaultsPool returns records of the given kind inside the defaults folder.
func (idx *AssetIndex) DefaultsPool(kind Kind) []*AssetRecord {
	var pool []*AssetRecord
	for _, rec := range idx.InFolder(idx.defaultsFolder) {
		if rec.Kind == kind {
			pool = append(pool, rec)
		}
	}
	return pool
}

func (idx *AssetIndex) records(kind Kind) []AssetRecord {
	if kind == KindEngine {
		return idx.Engines
	}
	return idx.Wagons
}

// Len returns the total record count.
func (idx *AssetIndex) Len() int {
	return len(idx.Engines) + len(idx.Wagons)
}
