package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONSISTFIX_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Resolver.LocalThreshold != 120 {
		t.Errorf("local threshold default = %d", cfg.Resolver.LocalThreshold)
	}
	if cfg.Resolver.GlobalThreshold != 90 {
		t.Errorf("global threshold default = %d", cfg.Resolver.GlobalThreshold)
	}
	if !cfg.Scan.UseCache {
		t.Error("cache must default on")
	}
	if cfg.Scan.DefaultsFolder != "_DEFAULTS" {
		t.Errorf("defaults folder = %q", cfg.Scan.DefaultsFolder)
	}
	if cfg.Rewrite.ConsistGlob != "**/*.con" {
		t.Errorf("consist glob = %q", cfg.Rewrite.ConsistGlob)
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("CONSISTFIX_HOME", t.TempDir())
	t.Setenv("CONSISTFIX_RESOLVER_LOCAL_THRESHOLD", "250")
	t.Setenv("CONSISTFIX_SCAN_DEEP", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Resolver.LocalThreshold != 250 {
		t.Errorf("env override missed: %d", cfg.Resolver.LocalThreshold)
	}
	if !cfg.Scan.Deep {
		t.Error("env override missed for scan.deep")
	}
}

func TestSnapshotPath(t *testing.T) {
	t.Setenv("CONSISTFIX_HOME", t.TempDir())

	cfg := &Config{}
	cfg.Scan.CacheFile = "/explicit/catalog.json"
	path, err := cfg.SnapshotPath("/sim/TRAINSET")
	if err != nil {
		t.Fatal(err)
	}
	if path != "/explicit/catalog.json" {
		t.Errorf("explicit cache file ignored: %q", path)
	}

	cfg.Scan.CacheFile = ""
	path, err = cfg.SnapshotPath("/sim/TRAINSET")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "TRAINSET-catalog.json" {
		t.Errorf("derived snapshot name wrong: %q", path)
	}
	if !strings.Contains(path, "cache") {
		t.Errorf("snapshot must live under the cache dir: %q", path)
	}
}
