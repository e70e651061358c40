package tui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextBreaksOnSpaces(t *testing.T) {
	lines := wrapText("your streak is broken come back", 12)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	for _, line := range lines {
		if runewidth.StringWidth(line) > 12 {
			t.Fatalf("line %q exceeds width 12", line)
		}
	}
}

func TestWrapTextShortInput(t *testing.T) {
	lines := wrapText("chon-ji", 20)
	if len(lines) != 1 || lines[0] != "chon-ji" {
		t.Fatalf("expected single line, got %v", lines)
	}
}

func TestWrapTextSplitsLongWord(t *testing.T) {
	lines := wrapText("aaaaaaaaaaaa", 5)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	for _, line := range lines {
		if runewidth.StringWidth(line) > 5 {
			t.Fatalf("line %q exceeds width 5", line)
		}
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	// Hangul runes are two cells wide.
	lines := wrapText("태권도 만세", 6)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	for _, line := range lines {
		if runewidth.StringWidth(line) > 6 {
			t.Fatalf("line %q exceeds width 6", line)
		}
	}
}

func TestWrapTextEmpty(t *testing.T) {
	lines := wrapText("", 10)
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected one empty line, got %v", lines)
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	lines := wrapText("unchanged text", 0)
	if len(lines) != 1 || lines[0] != "unchanged text" {
		t.Fatalf("expected input returned whole, got %v", lines)
	}
}
