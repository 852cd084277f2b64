package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/staggered-menu/internal/app"
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/atomicstack/staggered-menu/internal/overlay"
	"github.com/atomicstack/staggered-menu/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "STAGGERED_MENU_"

// envName maps a flag name to its environment variable.
func envName(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then the menu file, then built-in defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	def := ui.DefaultOptions()

	fs := flag.NewFlagSet("staggered-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	str := func(name, fallback, usage string) *string {
		return fs.String(name, envOrDefault(env, envName(name), fallback), usage)
	}
	boolean := func(name string, fallback bool, usage string) *bool {
		return fs.Bool(name, envOrBool(env, envName(name), fallback), usage)
	}

	menuFile := str("config", "", "path to a YAML menu file")
	watch := boolean("watch", false, "reload the menu file when it changes")
	position := str(ui.OptPosition, string(def.Position), "panel anchor: left or right")
	colors := str(ui.OptColors, strings.Join(def.Colors, ","), "comma-separated background layer colours (first two are used)")
	accent := str(ui.OptAccent, def.AccentColor, "accent colour for active links and numbers")
	buttonColor := str(ui.OptButtonColor, def.ButtonColor, "toggle control colour while closed")
	openButtonColor := str(ui.OptOpenButtonColor, def.OpenButtonColor, "toggle control colour while open")
	colorOnOpen := boolean(ui.OptColorOnOpen, def.ChangeColorOnOpen, "crossfade the toggle colour when opening")
	clickAway := boolean(ui.OptClickAway, def.CloseOnClickAway, "close the panel on clicks outside it")
	numbering := boolean(ui.OptNumbering, def.Numbering, "show item numbers")
	logo := str(ui.OptLogo, def.Logo, "logo text shown in the header")
	openLabel := str(ui.OptOpenLabel, def.OpenLabel, "toggle label while closed")
	closeLabel := str(ui.OptCloseLabel, def.CloseLabel, "toggle label while open")
	path := str("path", def.StartPath, "initial route")
	user := str("user", "", "display name used when signing in")
	signedIn := boolean("signed-in", false, "start with a signed-in session")
	admin := boolean("admin", false, "grant the session admin rights")
	light := boolean("light", !def.Dark, "start with the light palette")
	timeScale := fs.Float64("time-scale", envOrFloat(env, envName("time-scale"), def.TimeScale), "animation speed multiplier (0.5 plays at half speed)")
	width := fs.Int("width", envOrInt(env, envName("width"), 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envName("height"), 0), "desired viewport height in rows (0 uses terminal height)")
	footer := boolean("footer", false, "show key help below the status line")
	verbose := boolean("verbose", false, "print success messages for actions")
	trace := boolean("trace", false, "enable verbose JSON trace logging")
	logFile := str("log-file", "", "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *timeScale <= 0 {
		return Config{}, fmt.Errorf("time-scale must be > 0 (got %g)", *timeScale)
	}
	if *watch && *menuFile == "" {
		return Config{}, fmt.Errorf("watch requires a menu file (--config)")
	}
	pos, err := overlay.ParsePosition(*position)
	if err != nil {
		return Config{}, err
	}

	opts := def
	opts.Width = *width
	opts.Height = *height
	opts.ShowFooter = *footer
	opts.Verbose = *verbose
	opts.Logo = *logo
	opts.Position = pos
	opts.Colors = splitList(*colors)
	opts.AccentColor = *accent
	opts.ButtonColor = *buttonColor
	opts.OpenButtonColor = *openButtonColor
	opts.ChangeColorOnOpen = *colorOnOpen
	opts.CloseOnClickAway = *clickAway
	opts.Numbering = *numbering
	opts.OpenLabel = *openLabel
	opts.CloseLabel = *closeLabel
	opts.StartPath = *path
	opts.Session = menu.Session{SignedIn: *signedIn, Admin: *admin, DisplayName: strings.TrimSpace(*user)}
	opts.Dark = !*light
	opts.TimeScale = *timeScale
	opts.Locked = explicitOptions(fs, env)

	if *menuFile != "" {
		doc, err := menu.ReadDocument(*menuFile)
		if err != nil {
			return Config{}, err
		}
		opts = opts.WithDocument(doc)
	}

	flags := make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) {
		flags[f.Name] = f.Value.String()
	})

	cfg := Config{
		App: app.Config{
			UI:       opts,
			MenuFile: *menuFile,
			Watch:    *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: flags,
		Args:  append([]string(nil), args...),
	}

	return cfg, nil
}

// explicitOptions lists options set on the command line or in the
// environment; the menu file never overrides them.
func explicitOptions(fs *flag.FlagSet, env map[string]string) map[string]bool {
	locked := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		locked[f.Name] = true
	})
	fs.VisitAll(func(f *flag.Flag) {
		if v, ok := env[envName(f.Name)]; ok && strings.TrimSpace(v) != "" {
			locked[f.Name] = true
		}
	})
	return locked
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks the merged configuration: every colour must parse as hex
// and the menu must describe at least one item.
func Validate(cfg Config) error {
	opts := cfg.App.UI
	named := map[string]string{
		ui.OptAccent:          opts.AccentColor,
		ui.OptButtonColor:     opts.ButtonColor,
		ui.OptOpenButtonColor: opts.OpenButtonColor,
	}
	for name, value := range named {
		if err := menu.ValidateColor(name, value); err != nil {
			return err
		}
	}
	for i, c := range opts.Colors {
		if err := menu.ValidateColor(fmt.Sprintf("%s[%d]", ui.OptColors, i), c); err != nil {
			return err
		}
	}
	if len(opts.Items) == 0 {
		return fmt.Errorf("menu has no items")
	}
	return menu.ValidateItems(opts.Items)
}
