package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestName), "name: demo\nsources:\n  - src\n  - extra.riva\n")
	writeFile(t, filepath.Join(dir, "src", "a.riva"), "print(1);")
	writeFile(t, filepath.Join(dir, "src", "nested", "b.riva"), "print(2);")
	writeFile(t, filepath.Join(dir, "src", "ignored.txt"), "")
	writeFile(t, filepath.Join(dir, "extra.riva"), "print(3);")

	proj, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if proj.Name != "demo" {
		t.Errorf("name = %q, want demo", proj.Name)
	}

	files, err := proj.SourceFiles()
	if err != nil {
		t.Fatalf("SourceFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) != SourceExt {
			t.Errorf("unexpected file %q", f)
		}
	}
}

func TestLoadFromWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.riva"), "print(1);")

	proj, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	files, err := proj.SourceFiles()
	if err != nil {
		t.Fatalf("SourceFiles: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "main.riva" {
		t.Errorf("files = %v, want [main.riva]", files)
	}
}

func TestLoadFromBadManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestName), "sources: [unclosed")

	if _, err := LoadFrom(dir); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}

func TestSourceFilesMissingEntry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestName), "sources:\n  - does-not-exist\n")

	proj, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if _, err := proj.SourceFiles(); err == nil {
		t.Fatal("expected error for missing source entry")
	}
}
