package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Setenv(EnvDebug, "")
	if l, err := parseLevel(""); err != nil || l != zapcore.WarnLevel {
		t.Errorf("default level = %v, %v", l, err)
	}
	t.Setenv(EnvDebug, "on")
	if l, err := parseLevel(""); err != nil || l != zapcore.DebugLevel {
		t.Errorf("debug env level = %v, %v", l, err)
	}
	if l, err := parseLevel("ERROR"); err != nil || l != zapcore.ErrorLevel {
		t.Errorf("explicit level = %v, %v", l, err)
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phplint.log")
	logger, err := New(Options{Level: "info", File: path})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("unit parsed", zap.String("unit", "a.php"))
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, `"unit":"a.php"`) || !strings.Contains(out, `"logger":"phplint"`) {
		t.Errorf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
}
