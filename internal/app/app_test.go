package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/staggered-menu/internal/menu"
)

func TestNewWatcherDisabled(t *testing.T) {
	w, err := NewWatcher(Config{MenuFile: "menu.yaml"})
	if err != nil || w != nil {
		t.Fatalf("expected no watcher, got %v, %v", w, err)
	}
	w, err = NewWatcher(Config{Watch: true})
	if err != nil || w != nil {
		t.Fatalf("expected no watcher without a file, got %v, %v", w, err)
	}
}

func TestNewWatcherLoadsDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - label: Home\n    link: /\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(Config{MenuFile: path, Watch: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("items:\n  - label: Books\n    link: /books\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected reload error: %v", evt.Err)
		}
		doc, ok := evt.Data.(menu.Document)
		if !ok || len(doc.Items) != 1 || doc.Items[0].Label != "Books" {
			t.Fatalf("unexpected document: %#v", evt.Data)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(Config{MenuFile: filepath.Join(t.TempDir(), "nope", "menu.yaml"), Watch: true})
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestNewWatcherReportsBadColour(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - label: Home\n    link: /\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(Config{MenuFile: path, Watch: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("accentColor: purple\nitems:\n  - label: Home\n    link: /\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	select {
	case evt := <-w.Events():
		if evt.Err == nil || !strings.Contains(evt.Err.Error(), "invalid colour") {
			t.Fatalf("expected colour error, got %#v", evt)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}
