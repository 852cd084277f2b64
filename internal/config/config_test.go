package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/staggered-menu/internal/overlay"
	"github.com/atomicstack/staggered-menu/internal/ui"
)

func writeMenu(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := ui.DefaultOptions()
	opts := cfg.App.UI
	if opts.Position != overlay.PositionRight || opts.AccentColor != def.AccentColor {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if len(opts.Colors) != 2 || opts.Colors[0] != def.Colors[0] {
		t.Fatalf("unexpected colours %v", opts.Colors)
	}
	if !opts.Dark || opts.TimeScale != 1 || opts.StartPath != "/" {
		t.Fatalf("unexpected runtime defaults: %+v", opts)
	}
	if len(opts.Locked) != 0 {
		t.Fatalf("nothing should be locked, got %v", opts.Locked)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{
		"--position", "left",
		"--colors", "#111111, #222222",
		"--numbering=false",
		"--user", "Ada",
		"--signed-in",
		"--light",
		"--time-scale", "0.5",
		"--width", "100",
		"--footer",
	}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := cfg.App.UI
	if opts.Position != overlay.PositionLeft {
		t.Fatalf("expected left position, got %s", opts.Position)
	}
	if len(opts.Colors) != 2 || opts.Colors[1] != "#222222" {
		t.Fatalf("expected trimmed colours, got %v", opts.Colors)
	}
	if opts.Numbering {
		t.Fatalf("expected numbering disabled")
	}
	if !opts.Session.SignedIn || opts.Session.DisplayName != "Ada" {
		t.Fatalf("unexpected session %+v", opts.Session)
	}
	if opts.Dark || opts.TimeScale != 0.5 || opts.Width != 100 || !opts.ShowFooter {
		t.Fatalf("unexpected options %+v", opts)
	}
	if !opts.Locked[ui.OptPosition] || !opts.Locked[ui.OptNumbering] {
		t.Fatalf("explicit flags should be locked, got %v", opts.Locked)
	}
	if cfg.Flags["position"] != "left" {
		t.Fatalf("expected flag snapshot, got %v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args copy, got %v", cfg.Args)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"STAGGERED_MENU_POSITION=left",
		"STAGGERED_MENU_CLICK_AWAY=false",
		"STAGGERED_MENU_HEIGHT=30",
		"STAGGERED_MENU_TIME_SCALE=2",
		"STAGGERED_MENU_LOG_FILE=/tmp/menu.log",
		"STAGGERED_MENU_TRACE=1",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := cfg.App.UI
	if opts.Position != overlay.PositionLeft || opts.CloseOnClickAway || opts.Height != 30 || opts.TimeScale != 2 {
		t.Fatalf("environment not applied: %+v", opts)
	}
	if !opts.Locked[ui.OptClickAway] {
		t.Fatalf("environment options should be locked")
	}
	if cfg.Logging.FilePath != "/tmp/menu.log" || !cfg.Logging.Trace {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadArgsFlagBeatsEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--position", "right"}, []string{"STAGGERED_MENU_POSITION=left"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.UI.Position != overlay.PositionRight {
		t.Fatalf("flag should win, got %s", cfg.App.UI.Position)
	}
}

func TestLoadArgsMenuFile(t *testing.T) {
	path := writeMenu(t, `
logo: Archive
position: left
accentColor: "#ff0000"
labels:
  open: Open
items:
  - label: Only
    link: /only
`)
	cfg, err := LoadArgs([]string{"--config", path, "--accent", "#00ff00", "--watch"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := cfg.App.UI
	if opts.Logo != "Archive" || opts.Position != overlay.PositionLeft || opts.OpenLabel != "Open" {
		t.Fatalf("menu file not applied: %+v", opts)
	}
	if opts.AccentColor != "#00ff00" {
		t.Fatalf("explicit flag should beat the menu file, got %s", opts.AccentColor)
	}
	if len(opts.Items) != 1 || opts.Items[0].Label != "Only" {
		t.Fatalf("unexpected items %+v", opts.Items)
	}
	if cfg.App.MenuFile != path || !cfg.App.Watch {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"negative width":  {"--width", "-1"},
		"negative height": {"--height", "-5"},
		"zero time scale": {"--time-scale", "0"},
		"bad position":    {"--position", "top"},
		"watch without":   {"--watch"},
		"missing file":    {"--config", filepath.Join(t.TempDir(), "missing.yaml")},
		"unknown flag":    {"--socket", "x"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadArgs(args, nil); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestValidateRejectsBadColours(t *testing.T) {
	for _, args := range [][]string{
		{"--accent", "purple"},
		{"--colors", "#111111,nope"},
		{"--button-color", "#12"},
	} {
		cfg, err := LoadArgs(args, nil)
		if err != nil {
			t.Fatalf("unexpected load error: %v", err)
		}
		if err := Validate(cfg); err == nil {
			t.Fatalf("expected validation error for %v", args)
		}
	}
}

func TestParseEnvSkipsMalformed(t *testing.T) {
	env := parseEnv([]string{"", "NOEQUALS", "A=1", "B=x=y"})
	if len(env) != 2 || env["A"] != "1" || env["B"] != "x=y" {
		t.Fatalf("unexpected env %v", env)
	}
}
