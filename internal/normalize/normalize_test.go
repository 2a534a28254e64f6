package normalize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"IR_WAP7_Ghaziabad", "wap7 ghaziabad"},
		{"MSTS-WDM3A__Loco", "wdm3a loco"},
		{"or wap-4", "wap 4"},
		{"  LHB--Sleeper  ", "lhb sleeper"},
		{"boxn", "boxn"},
		{"", ""},
		{"___", ""},
		{"IR_MSTS_WAG9", "wag9"},
	}

	for _, test := range tests {
		if got := Normalize(test.in); got != test.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", test.in, got, test.expected)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"IR_WAP7_Ghaziabad", "MSTS BOXN-Rake", "tsre_ICF_SL_01", "plain name",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestWithoutFolderTokens(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		expected string
	}{
		{"WAP7_Ghaziabad", "Ghaziabad", "wap7"},
		{"ICF_SL_Coaches", "My_Coaches", "icf sl"},
		{"BOXN", "Freight", "boxn"},
		{"Ghaziabad", "Ghaziabad", ""},
	}

	for _, test := range tests {
		if got := WithoutFolderTokens(test.name, test.folder); got != test.expected {
			t.Errorf("WithoutFolderTokens(%q, %q) = %q, expected %q",
				test.name, test.folder, got, test.expected)
		}
	}
}

func TestTokenizeSplitsLetterDigitRuns(t *testing.T) {
	set := Tokenize("WAP7_Ghaziabad")
	for _, tok := range []string{"wap7", "wap", "7", "ghaziabad"} {
		if !set.Has(tok) {
			t.Errorf("Tokenize missing token %q, got %v", tok, set.Sorted())
		}
	}
}

func TestTokenizeExpandsAliases(t *testing.T) {
	set := Tokenize("EMU_9car")
	for _, tok := range []string{"emu", "electric", "passenger", "unit"} {
		if !set.Has(tok) {
			t.Errorf("alias expansion missing %q, got %v", tok, set.Sorted())
		}
	}

	// Aliases also apply to the letter part of a split run
	set = Tokenize("WAP7")
	if !set.Has("electric") {
		t.Errorf("expected wap -> electric expansion, got %v", set.Sorted())
	}
}

func TestTokenizeBigrams(t *testing.T) {
	set := Tokenize("vande bharat")
	if !set.Has("vande_bharat") {
		t.Errorf("expected adjacent bigram token, got %v", set.Sorted())
	}
}

func TestTokenSetOverlap(t *testing.T) {
	a := Tokenize("WAP7_Ghaziabad")
	b := Tokenize("IR_WAP7")
	if a.Overlap(b) < 2 {
		t.Errorf("expected >=2 shared tokens, got %d (a=%v b=%v)",
			a.Overlap(b), a.Sorted(), b.Sorted())
	}
}

func TestIsStopToken(t *testing.T) {
	if !IsStopToken("wagon") || !IsStopToken("pack") {
		t.Error("expected generic tokens to be stop-listed")
	}
	if IsStopToken("wap7") {
		t.Error("wap7 must not be stop-listed")
	}
}

func TestMergeOverlay(t *testing.T) {
	e := NewExpander()
	e.MergeOverlay(map[string][]string{
		"xyz": {"Custom", "custom", " tokens "},
		"wap": {"extra"},
	})

	set := e.Tokenize("XYZ_01")
	if !set.Has("custom") || !set.Has("tokens") {
		t.Errorf("overlay synonyms missing, got %v", set.Sorted())
	}

	set = e.Tokenize("WAP7")
	if !set.Has("extra") || !set.Has("electric") {
		t.Errorf("overlay must append, not replace: %v", set.Sorted())
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	content := "myterm:\n  - one\n  - two\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	overlay, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay() failed: %v", err)
	}
	if len(overlay["myterm"]) != 2 {
		t.Errorf("expected 2 synonyms, got %v", overlay["myterm"])
	}

	if _, err := LoadOverlay(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing overlay file")
	}
}
