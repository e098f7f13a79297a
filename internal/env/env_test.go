package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
# gallery overrides
GALLERY_FFMPEG=/usr/local/bin/ffmpeg
export GALLERY_CONFIG="config/alt.yaml"
QUOTED='single'
=novalue
garbage line
SPACED = padded
`
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() err = %v", err)
	}
	want := map[string]string{
		"GALLERY_FFMPEG": "/usr/local/bin/ffmpeg",
		"GALLERY_CONFIG": "config/alt.yaml",
		"QUOTED":         "single",
		"SPACED":         "padded",
	}
	if len(got) != len(want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestLoadKeepsExistingEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "GALLERY_TEST_SET=from-file\nGALLERY_TEST_UNSET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GALLERY_TEST_SET", "from-env")
	t.Setenv("GALLERY_TEST_UNSET", "")
	os.Unsetenv("GALLERY_TEST_UNSET")

	if err := Load(path); err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if got := os.Getenv("GALLERY_TEST_SET"); got != "from-env" {
		t.Errorf("GALLERY_TEST_SET = %q, want from-env", got)
	}
	if got := os.Getenv("GALLERY_TEST_UNSET"); got != "from-file" {
		t.Errorf("GALLERY_TEST_UNSET = %q, want from-file", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("Load(missing) = %v, want nil", err)
	}
}
