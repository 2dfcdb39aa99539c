package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("player:\n  lives: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer w.Close()

	// Sibling files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("player:\n  lives: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		want, _ := filepath.Abs(path)
		gotAbs, _ := filepath.Abs(got)
		if gotAbs != want {
			t.Errorf("event for %q, expected %q", got, want)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := WatchDirs(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed")
	}
	// Second close is a no-op.
	_ = w.Close()
}

func TestIsConfigFile(t *testing.T) {
	for path, want := range map[string]bool{
		"zones.yaml": true,
		"a/b.YML":    true,
		"notes.txt":  false,
		"yaml":       false,
	} {
		if got := isConfigFile(path); got != want {
			t.Errorf("isConfigFile(%q) = %v, expected %v", path, got, want)
		}
	}
}
