package tmux

import (
	"os"
	"sync"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Editor is a tmux pane running a terminal text editor.
type Editor struct {
	PaneID  string
	Target  string
	Command string
	Title   string
	Path    string
	Active  bool
}

// EditorSnapshot is the result of one editor poll.
type EditorSnapshot struct {
	Editors []Editor
	// Session is the session the scan was restricted to, if any.
	Session string
}

type tmuxClient interface {
	ListAllPanes() ([]*gotmux.Pane, error)
	ListPanesFormat(target, filter, format string) ([]string, error)
	DisplayMessage(target, format string) (string, error)
	KillServer() error
	Close() error
}

var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	statFile = func(path string) (os.FileInfo, error) {
		return os.Stat(path)
	}

	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string
)

// client returns the shared control-mode connection for socketPath,
// reconnecting when the socket changes.
func client(socketPath string) (tmuxClient, error) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil && cachedSocket == socketPath {
		return cachedClient, nil
	}
	if cachedClient != nil {
		_ = cachedClient.Close()
		cachedClient = nil
	}
	c, err := newTmux(socketPath)
	if err != nil {
		return nil, err
	}
	cachedClient = c
	cachedSocket = socketPath
	return c, nil
}

// dropClient discards the cached connection after a failed query so the
// next poll reconnects.
func dropClient(c tmuxClient) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient == c {
		_ = c.Close()
		cachedClient = nil
		cachedSocket = ""
	}
}

// Shutdown closes the cached control-mode connection.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil {
		_ = cachedClient.Close()
	}
	cachedClient = nil
	cachedSocket = ""
}
