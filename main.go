package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/navsync/internal/app"
	"github.com/atomicstack/navsync/internal/config"
	"github.com/atomicstack/navsync/internal/logging"
	"github.com/atomicstack/navsync/internal/logging/events"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("navsync needs an interactive terminal on stdin and stdout")

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	terminals := probeTerminals()
	events.App.Start(startupTracePayload(cfg, terminals))
	if err := requireTerminal(terminals); err != nil {
		events.App.Stop(err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		events.App.Stop(err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	events.App.Stop("quit")
}

// startupTracePayload describes what this run will load and watch.
func startupTracePayload(cfg config.Config, terminals []terminalProbe) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	return map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     flags,
		"workspace": describeWorkspace(cfg.App.WorkspacePath),
		"session": map[string]interface{}{
			"dir":     cfg.App.SessionDir,
			"restore": cfg.App.SessionDir != "",
		},
		"editors": map[string]interface{}{
			"tmux":     cfg.App.PollEditors,
			"socket":   cfg.App.SocketPath,
			"interval": cfg.App.PollInterval.String(),
		},
		"terminals": terminals,
	}
}

func describeWorkspace(path string) map[string]interface{} {
	out := map[string]interface{}{"path": path}
	if abs, err := filepath.Abs(path); err == nil {
		out["abs"] = abs
	}
	_, err := os.Stat(path)
	out["exists"] = err == nil
	if err != nil && !os.IsNotExist(err) {
		out["error"] = err.Error()
	}
	return out
}

type terminalProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// probeTerminals reports which standard descriptors are terminals.
func probeTerminals() []terminalProbe {
	return []terminalProbe{
		probeTerminal("stdin", os.Stdin),
		probeTerminal("stdout", os.Stdout),
	}
}

func probeTerminal(name string, f *os.File) terminalProbe {
	p := terminalProbe{Name: name}
	if f == nil {
		return p
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return p
	}
	p.Terminal = true
	if w, h, err := term.GetSize(fd); err == nil {
		p.Width, p.Height = w, h
	} else {
		p.Error = err.Error()
	}
	return p
}

func requireTerminal(probes []terminalProbe) error {
	for _, p := range probes {
		if !p.Terminal {
			return fmt.Errorf("%w (%s is not a terminal)", errNoTerminal, p.Name)
		}
	}
	return nil
}
