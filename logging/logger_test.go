package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestInit_WritesToLogFile(t *testing.T) {
	base := t.TempDir()
	if err := Init(base); err != nil {
		t.Fatal(err)
	}
	defer Close()

	Info("scan finished", zap.Int("entries", 3))
	Close()

	entries, err := os.ReadDir(filepath.Join(base, "logs"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("log files = %d, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(base, "logs", entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "scan finished") {
		t.Errorf("log file missing message:\n%s", data)
	}
	if !strings.Contains(string(data), "entries") {
		t.Errorf("log file missing field:\n%s", data)
	}
}

func TestSetLevel_FiltersDebug(t *testing.T) {
	base := t.TempDir()
	if err := Init(base); err != nil {
		t.Fatal(err)
	}
	SetLevel("warn")
	defer SetLevel("info")

	Info("quiet line")
	Warn("loud line")
	dir := GetLogDir()
	Close()

	entries, _ := os.ReadDir(dir)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "quiet line") {
		t.Error("info line written while level is warn")
	}
	if !strings.Contains(string(data), "loud line") {
		t.Error("warn line missing")
	}
}

func TestRotateKeep_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	for i := 0; i < 8; i++ {
		p := filepath.Join(dir, "old_"+string(rune('a'+i))+".log")
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		mod := now.Add(-time.Duration(i) * time.Hour)
		if err := os.Chtimes(p, mod, mod); err != nil {
			t.Fatal(err)
		}
	}

	rotateKeep(dir, 5)

	entries, _ := os.ReadDir(dir)
	if len(entries) != 5 {
		t.Fatalf("files left = %d, want 5", len(entries))
	}
	for _, e := range entries {
		if e.Name() > "old_e.log" {
			t.Errorf("%s should have been removed", e.Name())
		}
	}
}

func TestRecoverPanic_Swallows(t *testing.T) {
	func() {
		defer RecoverPanic("test")
		panic("boom")
	}()
}
