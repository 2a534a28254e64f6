package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/openraildev/consistfix/pkg/logger"
)

// ErrPathNotFound is returned when the catalog root does not exist. The run
// cannot proceed without a catalog, so callers treat it as fatal.
var ErrPathNotFound = fmt.Errorf("catalog root not found")

// assetPattern matches the two recognized asset file kinds by extension,
// case-insensitively via a lowercased base name.
const assetPattern = "*.{eng,wag}"

// Build scans the trainset root and constructs the index. In fast mode only
// the immediate child folders are enumerated; deep mode walks the whole tree.
// The defaults folder is always recursed in full, regardless of mode.
func Build(root string, deep bool, defaultsFolder string) (*AssetIndex, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
	}

	var engines, wagons []AssetRecord
	collect := func(path string) {
		rec, ok := recordForFile(root, defaultsFolder, path)
		if !ok {
			return
		}
		if rec.Kind == KindEngine {
			engines = append(engines, rec)
		} else {
			wagons = append(wagons, rec)
		}
	}

	if deep {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				logger.Warn("Skipping unreadable path during scan",
					logger.String("path", path), logger.Err(walkErr))
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if filepath.Dir(path) == root {
				// Assets directly in the root have no containing folder name
				return nil
			}
			collect(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
	} else {
		entries, readErr := os.ReadDir(root)
		if readErr != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, readErr)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(root, entry.Name())
			if strings.EqualFold(entry.Name(), defaultsFolder) {
				// Defaults are always walked in full
				_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
					if walkErr != nil || d.IsDir() {
						return nil
					}
					collect(path)
					return nil
				})
				continue
			}
			files, dirErr := os.ReadDir(dir)
			if dirErr != nil {
				logger.Warn("Skipping unreadable folder during scan",
					logger.String("folder", dir), logger.Err(dirErr))
				continue
			}
			for _, f := range files {
				if f.IsDir() {
					continue
				}
				collect(filepath.Join(dir, f.Name()))
			}
		}
	}

	logger.Info("Catalog scan complete",
		logger.String("root", root),
		logger.Bool("deep", deep),
		logger.Int("engines", len(engines)),
		logger.Int("wagons", len(wagons)))

	return newIndex(engines, wagons, defaultsFolder), nil
}

// recordForFile turns an asset file path into a record. Non-asset files are
// rejected via the extension pattern. Anything under the defaults folder is
// recorded against the defaults folder itself, however deeply nested, so it
// lands in the fallback pool rather than masquerading as an ordinary folder.
func recordForFile(root, defaultsFolder, path string) (AssetRecord, bool) {
	base := filepath.Base(path)
	matched, err := doublestar.Match(assetPattern, strings.ToLower(base))
	if err != nil || !matched {
		return AssetRecord{}, false
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	kind, ok := KindForExtension(ext)
	if !ok {
		return AssetRecord{}, false
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	folder := filepath.Base(filepath.Dir(path))
	if rel, relErr := filepath.Rel(root, path); relErr == nil {
		if first, _, nested := strings.Cut(filepath.ToSlash(rel), "/"); nested && strings.EqualFold(first, defaultsFolder) {
			folder = first
		}
	}
	return NewRecord(kind, name, folder, path), true
}
