/*
Copyright © 2025 OpenRailDev <info@openraildev.org>
*/
package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCommand()
	registerSubcommands(root)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	out := executeCommand(t, "version")
	if !strings.Contains(out, "consistfix") {
		t.Errorf("version output missing binary name: %q", out)
	}
}

func TestVersionExtended(t *testing.T) {
	out := executeCommand(t, "version", "--extended")
	for _, want := range []string{"module:", "go:", "platform:"} {
		if !strings.Contains(out, want) {
			t.Errorf("extended output missing %q: %q", want, out)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	out := executeCommand(t, "--version")
	if !strings.HasPrefix(out, "consistfix ") {
		t.Errorf("unexpected --version output: %q", out)
	}
}

func TestFixRequiresTwoArgs(t *testing.T) {
	root := newRootCommand()
	registerSubcommands(root)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"fix", "only-one"})
	if err := root.Execute(); err == nil {
		t.Error("fix must require exactly two arguments")
	}
}

func TestLoadConfigWithFlags(t *testing.T) {
	root := newRootCommand()
	registerSubcommands(root)

	fix, _, err := root.Find([]string{"fix"})
	if err != nil {
		t.Fatal(err)
	}
	if err := fix.Flags().Set("local-threshold", "200"); err != nil {
		t.Fatal(err)
	}
	if err := fix.Flags().Set("strict-class", "true"); err != nil {
		t.Fatal(err)
	}
	if err := fix.Flags().Set("no-cache", "true"); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigWithFlags(fix)
	if err != nil {
		t.Fatalf("loadConfigWithFlags failed: %v", err)
	}

	if cfg.Resolver.LocalThreshold != 200 {
		t.Errorf("flag did not override threshold: %d", cfg.Resolver.LocalThreshold)
	}
	if !cfg.Resolver.StrictClass {
		t.Error("strict-class flag not applied")
	}
	if cfg.Scan.UseCache {
		t.Error("no-cache flag not applied")
	}
	// Untouched settings keep their configured defaults
	if cfg.Resolver.GlobalThreshold != 90 {
		t.Errorf("unexpected global threshold: %d", cfg.Resolver.GlobalThreshold)
	}
}
