package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPreprocessArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
		lang string
	}{
		{[]string{"check", "a.php"}, "check a.php", ""},
		{[]string{"--lang", "zh", "check", "a.php"}, "check a.php", "zh"},
		{[]string{"check", "-lang=en", "a.php"}, "check a.php", "en"},
		{[]string{"--lang=zh", "help"}, "help", "zh"},
	}

	for _, tt := range tests {
		globalLang = ""
		got := strings.Join(preprocessArgs(tt.args), " ")
		if got != tt.want || globalLang != tt.lang {
			t.Errorf("preprocessArgs(%v) = %q lang %q, want %q lang %q", tt.args, got, globalLang, tt.want, tt.lang)
		}
	}
	globalLang = ""
}

func TestLoadConfigWalksUp(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "phplint.toml"), []byte("[report]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "src")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("", src)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Report.Format != "json" {
		t.Errorf("format = %q", cfg.Report.Format)
	}

	cfg, err = loadConfig("", t.TempDir())
	if err != nil || cfg.Report.Format != "text" {
		t.Errorf("default config = %+v, %v", cfg, err)
	}
}
