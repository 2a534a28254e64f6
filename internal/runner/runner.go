// Package runner orchestrates a batch repair run: catalog acquisition, consist
// discovery, sequential file processing, and aggregate reporting.
package runner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/openraildev/consistfix/internal/catalog"
	"github.com/openraildev/consistfix/internal/config"
	"github.com/openraildev/consistfix/internal/consist"
	"github.com/openraildev/consistfix/internal/normalize"
	"github.com/openraildev/consistfix/internal/resolve"
	"github.com/openraildev/consistfix/pkg/logger"
	"github.com/openraildev/consistfix/pkg/safeio"
)

// Mode selects what a run does with its results.
type Mode int

const (
	// ModeFix rewrites files in place.
	ModeFix Mode = iota
	// ModePreview resolves and reports but writes nothing.
	ModePreview
	// ModeCheck analyzes only; identical to preview but reported as a check.
	ModeCheck
)

// Options configures one run.
type Options struct {
	ConsistsDir string
	TrainsetDir string
	Config      *config.Config
	Mode        Mode
}

// Summary aggregates the outcome of a whole run.
type Summary struct {
	Files        int
	FilesChanged int
	FilesFailed  int
	Stats        consist.Stats
	Mode         Mode
}

// Runner executes batch repair runs. Files are processed strictly one at a
// time; the catalog is built once up front and shared read-only.
type Runner struct {
	cfg *config.Config
}

// New creates a runner bound to a configuration.
func New(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run executes the batch: acquire the catalog, discover consists, process each
// file, and write back changes unless the mode forbids it. Per-file read and
// write failures are logged and counted, never fatal to the batch.
func (r *Runner) Run(opts Options) (*Summary, error) {
	consistsDir, err := safeio.CleanUserPath(opts.ConsistsDir)
	if err != nil {
		return nil, fmt.Errorf("consists directory: %w", err)
	}
	trainsetDir, err := safeio.CleanUserPath(opts.TrainsetDir)
	if err != nil {
		return nil, fmt.Errorf("trainset directory: %w", err)
	}

	idx, err := r.AcquireIndex(trainsetDir, false)
	if err != nil {
		return nil, err
	}

	engine, err := r.buildEngine(idx)
	if err != nil {
		return nil, err
	}
	rewriter := consist.NewRewriter(idx, engine)

	files, err := discoverConsists(consistsDir, r.cfg.Rewrite.ConsistGlob)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No consist files found",
			logger.String("dir", consistsDir),
			logger.String("glob", r.cfg.Rewrite.ConsistGlob))
	}

	summary := &Summary{Files: len(files), Mode: opts.Mode}
	for i, rel := range files {
		path := filepath.Join(consistsDir, rel)
		logger.Info("Processing consist",
			logger.String("file", rel),
			logger.String("progress", fmt.Sprintf("%d/%d", i+1, len(files))))

		data, readErr := safeio.ReadFileContained(consistsDir, path)
		if readErr != nil {
			summary.FilesFailed++
			logger.Error("Failed to read consist",
				logger.String("file", path), logger.Err(readErr))
			continue
		}

		out, _, stats, changed := rewriter.Rewrite(rel, data)
		summary.Stats.Merge(stats)
		if !changed {
			continue
		}
		summary.FilesChanged++

		if opts.Mode != ModeFix {
			logger.Info("Would rewrite consist", logger.String("file", rel))
			continue
		}
		if writeErr := safeio.WriteFilePreservePerms(path, out); writeErr != nil {
			summary.FilesFailed++
			logger.Error("Failed to write consist",
				logger.String("file", path), logger.Err(writeErr))
			continue
		}
		logger.Info("Consist rewritten", logger.String("file", rel))
	}

	return summary, nil
}

// AcquireIndex returns the asset catalog for a trainset directory, loading a
// snapshot when caching is enabled and falling back to a fresh scan. A fresh
// scan is persisted back to the snapshot path on a best-effort basis. rebuild
// forces the scan even when a valid snapshot exists.
func (r *Runner) AcquireIndex(trainsetDir string, rebuild bool) (*catalog.AssetIndex, error) {
	snapshotPath := ""
	if r.cfg.Scan.UseCache {
		p, err := r.cfg.SnapshotPath(trainsetDir)
		if err != nil {
			logger.Warn("Snapshot path unavailable, caching disabled", logger.Err(err))
		} else {
			snapshotPath = p
		}
	}

	if snapshotPath != "" && !rebuild {
		if idx := catalog.Load(snapshotPath, r.cfg.Scan.DefaultsFolder); idx != nil {
			return idx, nil
		}
	}

	idx, err := catalog.Build(trainsetDir, r.cfg.Scan.Deep, r.cfg.Scan.DefaultsFolder)
	if err != nil {
		return nil, err
	}
	if idx.Len() == 0 {
		logger.Warn("Catalog is empty; every reference will be unresolved",
			logger.String("root", trainsetDir))
	}
	if snapshotPath != "" {
		if saveErr := catalog.Save(idx, snapshotPath); saveErr != nil {
			logger.Warn("Failed to persist catalog snapshot", logger.Err(saveErr))
		}
	}
	return idx, nil
}

func (r *Runner) buildEngine(idx *catalog.AssetIndex) (*resolve.Engine, error) {
	expander := normalize.NewExpander()
	if overlayPath := r.cfg.Resolver.AliasOverlay; overlayPath != "" {
		overlay, err := normalize.LoadOverlay(overlayPath)
		if err != nil {
			return nil, err
		}
		expander.MergeOverlay(overlay)
		logger.Info("Alias overlay applied",
			logger.String("path", overlayPath), logger.Int("entries", len(overlay)))
	}
	return resolve.New(idx, resolve.Options{
		StrictClass:     r.cfg.Resolver.StrictClass,
		StrictType:      r.cfg.Resolver.StrictType,
		LocalThreshold:  r.cfg.Resolver.LocalThreshold,
		GlobalThreshold: r.cfg.Resolver.GlobalThreshold,
		Explain:         r.cfg.Resolver.Explain,
		Expander:        expander,
	}), nil
}

// discoverConsists walks dir for files matching the consist glob and returns
// relative paths in sorted order so runs are deterministic. Matching is
// case-insensitive via lowercased relative paths.
func discoverConsists(dir, glob string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("consists directory not found: %s", dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			logger.Warn("Skipping unreadable path during discovery",
				logger.String("path", path), logger.Err(walkErr))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if matched, _ := doublestar.Match(glob, strings.ToLower(rel)); matched {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering consists in %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
