package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/navsync/internal/app"
	"github.com/atomicstack/navsync/internal/config"
)

func TestProbeTerminalsCoversStdinAndStdout(t *testing.T) {
	probes := probeTerminals()
	if len(probes) != 2 || probes[0].Name != "stdin" || probes[1].Name != "stdout" {
		t.Fatalf("unexpected probes %#v", probes)
	}
}

func TestProbeTerminalOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if p := probeTerminal("file", f); p.Terminal || p.Width != 0 {
		t.Fatalf("regular file reported as terminal: %#v", p)
	}
}

func TestRequireTerminal(t *testing.T) {
	ok := []terminalProbe{{Name: "stdin", Terminal: true}, {Name: "stdout", Terminal: true}}
	if err := requireTerminal(ok); err != nil {
		t.Fatalf("expected terminals accepted, got %v", err)
	}
	piped := []terminalProbe{{Name: "stdin", Terminal: true}, {Name: "stdout"}}
	err := requireTerminal(piped)
	if !errors.Is(err, errNoTerminal) {
		t.Fatalf("expected errNoTerminal, got %v", err)
	}
}

func TestStartupTracePayloadDescribesRun(t *testing.T) {
	dir := t.TempDir()
	wsPath := filepath.Join(dir, "navsync.yaml")
	if err := os.WriteFile(wsPath, []byte("projects: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{
		App: app.Config{
			WorkspacePath: wsPath,
			SocketPath:    "socket-path",
			PollEditors:   true,
			PollInterval:  2 * time.Second,
			SessionDir:    filepath.Join(dir, "session"),
		},
		Logging: config.Logging{FilePath: "trace.log", Trace: true},
		Flags: map[string]string{
			"workspace":   wsPath,
			"tmuxEditors": "true",
			"poll":        "2s",
		},
		Args: []string{"--poll", "2s"},
	}
	terminals := []terminalProbe{{Name: "stdin", Terminal: true}}

	payload := startupTracePayload(cfg, terminals)

	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flags["poll"] != "2s" || flags["tmuxEditors"] != "true" {
		t.Fatalf("expected poll and tmux editor flags, got %v / %v", flags["poll"], flags["tmuxEditors"])
	}
	if flags["trace"] != true || flags["logFile"] != "trace.log" {
		t.Fatalf("expected logging flags, got %v / %v", flags["trace"], flags["logFile"])
	}

	ws, ok := payload["workspace"].(map[string]interface{})
	if !ok || ws["path"] != wsPath || ws["exists"] != true || ws["abs"] != wsPath {
		t.Fatalf("unexpected workspace entry %#v", payload["workspace"])
	}
	session, ok := payload["session"].(map[string]interface{})
	if !ok || session["restore"] != true || session["dir"] != cfg.App.SessionDir {
		t.Fatalf("unexpected session entry %#v", payload["session"])
	}
	editors, ok := payload["editors"].(map[string]interface{})
	if !ok || editors["tmux"] != true || editors["interval"] != "2s" || editors["socket"] != "socket-path" {
		t.Fatalf("unexpected editors entry %#v", payload["editors"])
	}
	if got, ok := payload["terminals"].([]terminalProbe); !ok || len(got) != 1 {
		t.Fatalf("expected terminal probes in payload, got %#v", payload["terminals"])
	}
}

func TestDescribeMissingWorkspace(t *testing.T) {
	ws := describeWorkspace(filepath.Join(t.TempDir(), "absent.yaml"))
	if ws["exists"] != false {
		t.Fatalf("expected missing workspace, got %#v", ws)
	}
	if _, ok := ws["error"]; ok {
		t.Fatalf("a missing file is not an error: %#v", ws)
	}
}
