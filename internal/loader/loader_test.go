package loader

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

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.php"), "<?php")
	writeFile(t, filepath.Join(dir, "a.PHP"), "<?php")
	writeFile(t, filepath.Join(dir, "notes.txt"), "x")
	writeFile(t, filepath.Join(dir, "sub", "c.php"), "<?php")
	writeFile(t, filepath.Join(dir, ".git", "d.php"), "<?php")

	l := New(nil)
	got, err := l.Expand([]string{dir, filepath.Join(dir, "b.php")})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.PHP"),
		filepath.Join(dir, "b.php"),
		filepath.Join(dir, "sub", "c.php"),
	}
	if len(got) != len(want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expand[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if _, err := l.Expand([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("expected error for a missing path")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.php")
	writeFile(t, path, "<?php echo 1;")

	l := New([]string{".php"})
	src, err := l.LoadFile(path)
	if err != nil || src != "<?php echo 1;" {
		t.Fatalf("LoadFile = %q, %v", src, err)
	}
	if !l.IsLoaded(filepath.Join(dir, ".", "a.php")) || l.Loaded() != 1 {
		t.Error("file not marked as loaded")
	}
}

func TestResolveRequire(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "main.php")
	writeFile(t, filepath.Join(dir, "lib", "util.php"), "<?php")

	got, err := ResolveRequire(from, "lib/../lib/util.php")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "lib", "util.php") {
		t.Errorf("ResolveRequire = %s", got)
	}
	if _, err := ResolveRequire(from, "lib"); err == nil {
		t.Error("a directory is not a valid require target")
	}
	if _, err := ResolveRequire(from, "nope.php"); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestAutoloadPath(t *testing.T) {
	tests := []struct {
		base, class, ext string
		want             string
	}{
		{"/src", `A\B\C`, ".php", filepath.Join("/src", "A", "B", "C.php")},
		{"/src", `\Foo`, "php", filepath.Join("/src", "Foo.php")},
		{"lib", `it\icosaedro\Box`, ".inc", filepath.Join("lib", "it", "icosaedro", "Box.inc")},
	}
	for _, tt := range tests {
		if got := AutoloadPath(tt.base, tt.class, tt.ext); got != tt.want {
			t.Errorf("AutoloadPath(%q, %q, %q) = %s, want %s", tt.base, tt.class, tt.ext, got, tt.want)
		}
	}
}
