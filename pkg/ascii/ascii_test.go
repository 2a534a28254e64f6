package ascii

import (
	"strings"
	"testing"
)

func TestBoxAlignment(t *testing.T) {
	out := Box([]string{"short", "a longer line"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}

	width := len([]rune(lines[0]))
	for i, line := range lines {
		if len([]rune(line)) != width {
			t.Errorf("line %d width %d != %d: %q", i, len([]rune(line)), width, line)
		}
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasPrefix(lines[3], "└") {
		t.Errorf("borders missing:\n%s", out)
	}
}

func TestBoxEmpty(t *testing.T) {
	if out := Box(nil); out != "" {
		t.Errorf("empty input must yield empty output, got %q", out)
	}
}

func TestKeyValueLines(t *testing.T) {
	lines := KeyValueLines([][2]string{
		{"Fixed", "3"},
		{"Already Correct", "10"},
	})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Values line up at a common column
	if strings.Index(lines[0], "3") != strings.Index(lines[1], "10") {
		t.Errorf("values misaligned: %q vs %q", lines[0], lines[1])
	}
}
