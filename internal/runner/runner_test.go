package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openraildev/consistfix/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Resolver: config.ResolverConfig{LocalThreshold: 120, GlobalThreshold: 90},
		Scan:     config.ScanConfig{UseCache: false, DefaultsFolder: "_DEFAULTS"},
		Rewrite:  config.RewriteConfig{ConsistGlob: "**/*.con"},
	}
}

func writeFile(t *testing.T, root string, content string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fixtureDirs(t *testing.T) (consists, trainset string) {
	t.Helper()
	trainset = t.TempDir()
	writeFile(t, trainset, "SIMISA@@\n", "GZB_WAP7", "WAP7_30237.eng")
	writeFile(t, trainset, "SIMISA@@\n", "IR_Coaches", "ICF_SL_01.wag")

	consists = t.TempDir()
	broken := "Train (\n\tEngineData ( WAP7_30999 GZB_WAP7 )\n)\n"
	writeFile(t, consists, broken, "express.con")
	healthy := "Train (\n\tWagonData ( IR_Coaches \"ICF_SL_01\" )\n)\n"
	writeFile(t, consists, healthy, "nested", "Local.CON")
	return consists, trainset
}

func TestRunFixRewritesBrokenConsist(t *testing.T) {
	consists, trainset := fixtureDirs(t)

	summary, err := New(testConfig()).Run(Options{
		ConsistsDir: consists,
		TrainsetDir: trainset,
		Config:      testConfig(),
		Mode:        ModeFix,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Files)
	assert.Equal(t, 1, summary.FilesChanged)
	assert.Equal(t, 0, summary.FilesFailed)
	assert.Equal(t, 1, summary.Stats.Fixed)
	assert.Equal(t, 1, summary.Stats.AlreadyCorrect)

	data, err := os.ReadFile(filepath.Join(consists, "express.con"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `EngineData ( GZB_WAP7 "WAP7_30237" )`)
}

func TestRunPreviewWritesNothing(t *testing.T) {
	consists, trainset := fixtureDirs(t)
	before, err := os.ReadFile(filepath.Join(consists, "express.con"))
	require.NoError(t, err)

	summary, runErr := New(testConfig()).Run(Options{
		ConsistsDir: consists,
		TrainsetDir: trainset,
		Config:      testConfig(),
		Mode:        ModePreview,
	})
	require.NoError(t, runErr)

	// Decisions are still made and counted
	assert.Equal(t, 1, summary.FilesChanged)
	assert.Equal(t, 1, summary.Stats.Fixed)

	after, err := os.ReadFile(filepath.Join(consists, "express.con"))
	require.NoError(t, err)
	assert.Equal(t, before, after, "preview must not touch files")
}

func TestRunMissingConsistsDir(t *testing.T) {
	_, trainset := fixtureDirs(t)
	_, err := New(testConfig()).Run(Options{
		ConsistsDir: filepath.Join(trainset, "nope"),
		TrainsetDir: trainset,
		Config:      testConfig(),
		Mode:        ModeCheck,
	})
	require.Error(t, err)
}

func TestDiscoverConsistsCaseInsensitive(t *testing.T) {
	consists, _ := fixtureDirs(t)
	files, err := discoverConsists(consists, "**/*.con")
	require.NoError(t, err)

	assert.Len(t, files, 2)
	assert.Contains(t, files, "express.con")
	assert.Contains(t, files, "nested/Local.CON")
	// Sorted for deterministic processing order
	assert.True(t, sortedStrings(files))
}

func sortedStrings(xs []string) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > xs[i] {
			return false
		}
	}
	return true
}

func TestAcquireIndexCachesSnapshot(t *testing.T) {
	_, trainset := fixtureDirs(t)
	cfg := testConfig()
	cfg.Scan.UseCache = true
	cfg.Scan.CacheFile = filepath.Join(t.TempDir(), "catalog.json")

	r := New(cfg)
	idx, err := r.AcquireIndex(trainset, false)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())

	// The snapshot was persisted and satisfies the next acquisition even if
	// the asset tree vanishes
	require.FileExists(t, cfg.Scan.CacheFile)
	require.NoError(t, os.RemoveAll(filepath.Join(trainset, "IR_Coaches")))

	cached, err := r.AcquireIndex(trainset, false)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len())

	// Rebuild bypasses the snapshot
	fresh, err := r.AcquireIndex(trainset, true)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Len())
}

func TestRenderSummary(t *testing.T) {
	consists, trainset := fixtureDirs(t)
	summary, err := New(testConfig()).Run(Options{
		ConsistsDir: consists,
		TrainsetDir: trainset,
		Config:      testConfig(),
		Mode:        ModeCheck,
	})
	require.NoError(t, err)

	out := Render(summary)
	assert.Contains(t, out, "Check Summary")
	assert.Contains(t, out, "Files Processed")
	assert.Contains(t, out, "Fixed")
	assert.True(t, strings.HasPrefix(out, "┌"))
}
