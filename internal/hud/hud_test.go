package hud

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatLines(t *testing.T) {
	long := strings.Repeat("x", maxLineChars+10)
	got := FormatLines([]string{"  video playing: left  ", long})
	if got[0] != "video playing: left" {
		t.Errorf("line 0 = %q", got[0])
	}
	if len(got[1]) != maxLineChars || !strings.HasSuffix(got[1], "...") {
		t.Errorf("line 1 has length %d: %q", len(got[1]), got[1])
	}
}

func TestFormatLinesKeepsRunesWhole(t *testing.T) {
	// Two-byte runes put byte maxLineChars-3 in the middle of one.
	long := "warn: video center: open /vidéos/" + strings.Repeat("é", maxLineChars)
	got := FormatLines([]string{long})[0]
	if !utf8.ValidString(got) {
		t.Fatalf("truncated line is not valid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") || len(got) > maxLineChars {
		t.Errorf("line has length %d: %q", len(got), got)
	}
}

func TestFPSTextCached(t *testing.T) {
	h := New(true, false)
	if got := h.fpsText(60); got != "FPS: 60" {
		t.Fatalf("first fpsText = %q", got)
	}
	if got := h.fpsText(30); got != "FPS: 60" {
		t.Errorf("fpsText refreshed before the interval: %q", got)
	}
	for i := 0; i < updateInterval; i++ {
		h.fpsText(30)
	}
	if got := h.fpsText(30); got != "FPS: 30" {
		t.Errorf("fpsText after interval = %q, want FPS: 30", got)
	}
}
