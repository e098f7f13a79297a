package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogMemoryOnly(t *testing.T) {
	l := New("")
	l.Log("hello")
	l.Logf("video %s", "playing")
	l.Warnf("missing %d", 3)

	lines := l.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	wantSuffix := []string{"] hello", "] video playing", "] warn: missing 3"}
	for i, s := range wantSuffix {
		if !strings.HasPrefix(lines[i], "[") || !strings.HasSuffix(lines[i], s) {
			t.Errorf("line %d = %q, want [timestamp]...%q", i, lines[i], s)
		}
	}
}

func TestLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "log.txt")
	l := New(path)
	l.Log("first")
	l.Log("second")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(got) != 2 || !strings.HasSuffix(got[1], "second") {
		t.Errorf("file contents = %q", string(data))
	}
}

func TestTail(t *testing.T) {
	l := New("")
	for _, s := range []string{"a", "b", "c"} {
		l.Log(s)
	}
	tail := l.Tail(2)
	if len(tail) != 2 || !strings.HasSuffix(tail[0], "b") || !strings.HasSuffix(tail[1], "c") {
		t.Errorf("Tail(2) = %q", tail)
	}
	if got := l.Tail(10); len(got) != 3 {
		t.Errorf("Tail(10) returned %d lines, want 3", len(got))
	}
}

func TestHistoryBounded(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+25; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("kept %d lines, want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[0], "line 25") {
		t.Errorf("oldest kept line = %q, want line 25", lines[0])
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	l.Log("dropped")
	l.Warnf("dropped %d", 1)
}
