package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"photo_2023_beach.jpg": "photo_2023_beach",
		"/tmp/archive.tar.gz":  "archive.tar",
		"noext":                "noext",
	}
	for path, want := range cases {
		if got := Stem(path); got != want {
			t.Errorf("Stem(%q): expected %q, got %q", path, want, got)
		}
	}
}

func TestTarget(t *testing.T) {
	got := Target("/a/b/old.txt", "", "new")
	if got != filepath.Join("/a/b", "new.txt") {
		t.Errorf("unexpected in-place target %q", got)
	}
	got = Target("/a/b/old.txt", "/dest", "new")
	if got != filepath.Join("/dest", "new.txt") {
		t.Errorf("unexpected destination target %q", got)
	}
}

func TestApplyCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "payload")

	if err := Apply(ModeCopy, src, dst); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if readFile(t, dst) != "payload" {
		t.Error("copy did not preserve content")
	}
	if !Exists(src) {
		t.Error("copy must keep the source")
	}
}

func TestApplyRename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "payload")

	if err := Apply(ModeRename, src, dst); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if Exists(src) || !Exists(dst) {
		t.Error("rename must move the file")
	}
}

func TestApplyMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "payload")

	if err := Apply(ModeMove, src, dst); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if Exists(src) {
		t.Error("move must remove the source")
	}
	if readFile(t, dst) != "payload" {
		t.Error("move did not preserve content")
	}
}

func TestApplyMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := Apply(ModeCopy, filepath.Join(dir, "absent"), filepath.Join(dir, "out")); err == nil {
		t.Error("expected an error for a missing source")
	}
}
