package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/staggered-menu/internal/app"
	"github.com/atomicstack/staggered-menu/internal/config"
	"github.com/atomicstack/staggered-menu/internal/logging"
	"github.com/atomicstack/staggered-menu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))
	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		events.App.Stop(err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	events.App.Stop("exit")
	return 0
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	opts := cfg.App.UI
	locked := make([]string, 0, len(opts.Locked))
	for name := range opts.Locked {
		locked = append(locked, name)
	}
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"menu": map[string]interface{}{
			"file":     cfg.App.MenuFile,
			"watch":    cfg.App.Watch,
			"items":    len(opts.Items),
			"position": string(opts.Position),
			"locked":   locked,
		},
		"tty": collectTTYDetails(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyProbe  `json:"detected,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails reports which standard descriptors are terminals and the
// size of the first one that answers. The UI falls back to 80x24 without it.
func collectTTYDetails() ttyDetails {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	details := ttyDetails{Probes: make([]ttyProbe, 0, len(files))}
	for i, f := range files {
		p := probeTTY(names[i], int(f.Fd()))
		details.Probes = append(details.Probes, p)
		if details.Detected == nil && p.IsTerminal && p.Error == "" {
			found := p
			details.Detected = &found
		}
	}
	return details
}

func probeTTY(name string, fd int) ttyProbe {
	p := ttyProbe{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return p
	}
	p.IsTerminal = true
	w, h, err := term.GetSize(fd)
	if err != nil {
		p.Error = err.Error()
		return p
	}
	p.Width, p.Height = w, h
	return p
}
