package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var ErrPaneUnavailable = errors.New("tmux pane unavailable")

// Server is a throwaway tmux server bound to its own socket. Its verbose
// logs land in Dir.
type Server struct {
	Socket string
	Dir    string
	t      *testing.T
}

// RequireTmux skips the calling test when tmux is not on PATH.
func RequireTmux(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("skipping: tmux binary not available")
	}
}

// StartServer boots a tmux server holding one idle session. The server is
// killed and its logs checked for crashes when the test ends.
func StartServer(t *testing.T) *Server {
	t.Helper()
	RequireTmux(t)
	dir, err := os.MkdirTemp("/tmp", "navsync-*")
	if err != nil {
		t.Fatalf("create tmux temp dir: %v", err)
	}
	s := &Server{Socket: filepath.Join(dir, "tmux.sock"), Dir: dir, t: t}
	t.Cleanup(func() {
		s.kill()
		s.checkCrash()
		_ = os.RemoveAll(dir)
	})
	// -vv makes the server write tmux-server-<pid>.log into its cwd.
	start := s.Command("-f", "/dev/null", "-vv", "new-session", "-d", "-s", "navsync-test", "sleep", "600")
	start.Dir = dir
	if err := start.Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	return s
}

// Command builds a tmux invocation against the server, isolated from any
// tmux session the test runner itself lives in.
func (s *Server) Command(args ...string) *exec.Cmd {
	cmd := exec.Command("tmux", append([]string{"-S", s.Socket}, args...)...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if !strings.HasPrefix(entry, "TMUX=") {
			env = append(env, entry)
		}
	}
	cmd.Env = append(env, "TMUX=", "TMUX_TMPDIR="+s.Dir)
	return cmd
}

// Capture returns the rendered contents of target, escape sequences
// included. A pane that does not exist yet yields ErrPaneUnavailable.
func (s *Server) Capture(target string) (string, error) {
	out, err := s.Command("capture-pane", "-e", "-p", "-t", target).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrPaneUnavailable
		}
		return "", fmt.Errorf("capture-pane: %w", err)
	}
	return string(out), nil
}

// kill stops the server over a control-mode client, falling back to
// kill-server.
func (s *Server) kill() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := gotmux.NewTmuxWithOptions(s.Socket, gotmux.WithContext(ctx))
	if err == nil {
		err = client.KillServer()
		client.Close()
	}
	if err != nil {
		s.t.Logf("control-mode kill failed for %s: %v; using kill-server", s.Socket, err)
		_ = s.Command("kill-server").Run()
	}
}

func (s *Server) checkCrash() {
	logs, _ := filepath.Glob(filepath.Join(s.Dir, "tmux-server-*.log"))
	for _, path := range logs {
		content, err := os.ReadFile(path)
		if err != nil {
			s.t.Errorf("read tmux server log %s: %v", path, err)
			continue
		}
		if bytes.Contains(content, []byte("server exited unexpectedly")) {
			s.t.Errorf("tmux server reported unexpected exit; see %s", path)
		}
	}
}
