package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestResolveLogFilePathDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}

	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("default filename want %s got %s", defaultLogFilename, filepath.Base(got))
	}
	gotDir, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("resolve log dir symlink failed: %v", err)
	}
	if filepath.Base(gotDir) != defaultLogDirName {
		t.Fatalf("default dir want %s got %s", defaultLogDirName, filepath.Base(gotDir))
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Fatalf("log dir should be created up front: %v", err)
	}
}

func TestReleaseModeWritesStructuredFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{
		Dir:      tmpDir,
		Filename: "api.log",
	})
	log.Info("karat_prices_recomputed",
		zap.Uint("material_id", 7),
		zap.Int("updated", 3),
	)
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "api.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	line := strings.TrimSpace(string(content))
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("release log should be one JSON entry, got %q: %v", line, err)
	}
	if entry["message"] != "karat_prices_recomputed" {
		t.Fatalf("message field mismatch: %v", entry["message"])
	}
	if entry["material_id"] != float64(7) {
		t.Fatalf("material_id field mismatch: %v", entry["material_id"])
	}
	if entry["level"] != "info" {
		t.Fatalf("level field mismatch: %v", entry["level"])
	}
}

func TestDebugModeSkipsFileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{
		Dir:      tmpDir,
		Filename: "console.log",
	})
	log.Debug("catalog_snapshot_invalidated")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "console.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must log to console only")
	}
}
