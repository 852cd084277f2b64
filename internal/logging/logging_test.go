package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var out []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		out = append(out, e)
	}
	return out
}

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "menu.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := useTempLog(t)
	if Path() != path {
		t.Fatalf("expected %s, got %s", path, Path())
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory: %v", err)
	}
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("blank path should reset to default, got %s", Path())
	}
}

func TestTraceRespectsToggle(t *testing.T) {
	path := useTempLog(t)
	Trace("skipped", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("disabled trace should not touch the log")
	}
	SetTraceEnabled(true)
	Trace("menu.toggle", map[string]interface{}{"opening": true})
	entries := readEntries(t, path)
	if len(entries) != 1 || entries[0]["event"] != "menu.toggle" || entries[0]["level"] != "trace" {
		t.Fatalf("unexpected entries %v", entries)
	}
	payload, ok := entries[0]["payload"].(map[string]interface{})
	if !ok || payload["opening"] != true {
		t.Fatalf("unexpected payload %v", entries[0]["payload"])
	}
}

func TestErrorAppends(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("first"))
	Error(errors.New("second"))
	entries := readEntries(t, path)
	if len(entries) != 2 || entries[0]["error"] != "first" || entries[1]["error"] != "second" {
		t.Fatalf("unexpected entries %v", entries)
	}
}
