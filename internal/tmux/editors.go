package tmux

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var editorCommands = map[string]bool{
	"vi":    true,
	"vim":   true,
	"nvim":  true,
	"hx":    true,
	"helix": true,
	"kak":   true,
	"emacs": true,
	"nano":  true,
	"micro": true,
}

// IsEditorCommand reports whether command names a known terminal editor.
func IsEditorCommand(command string) bool {
	return editorCommands[strings.ToLower(filepath.Base(strings.TrimSpace(command)))]
}

const editorFormat = "#{pane_id}\t#S:#{window_index}.#{pane_index}\t#{pane_current_command}\t#{pane_current_path}\t#{pane_title}\t#{?pane_active&&window_active,1,0}"

// FetchEditors lists the editor panes of the tmux server at socketPath.
// Inside tmux the scan is limited to the session of the calling pane, and
// that pane itself is never reported.
func FetchEditors(socketPath string) (EditorSnapshot, error) {
	c, err := client(socketPath)
	if err != nil {
		return EditorSnapshot{}, err
	}
	self := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	var snapshot EditorSnapshot
	filter := ""
	if self != "" {
		if name, err := c.DisplayMessage(self, "#{session_name}"); err == nil {
			snapshot.Session = strings.TrimSpace(name)
		}
	}
	if snapshot.Session != "" {
		filter = fmt.Sprintf("#{==:#{session_name},%s}", snapshot.Session)
	}
	lines, err := c.ListPanesFormat("", filter, editorFormat)
	if err != nil {
		panes, listErr := c.ListAllPanes()
		if listErr != nil {
			dropClient(c)
			return EditorSnapshot{}, fmt.Errorf("tmux: list panes: %w", err)
		}
		lines = fallbackEditorLines(panes)
	}
	for _, line := range lines {
		ed, ok := parseEditorLine(line)
		if !ok || ed.PaneID == self {
			continue
		}
		snapshot.Editors = append(snapshot.Editors, ed)
	}
	return snapshot, nil
}

func parseEditorLine(line string) (Editor, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Editor{}, false
	}
	parts := strings.SplitN(line, "\t", 6)
	if len(parts) < 6 {
		return Editor{}, false
	}
	ed := Editor{
		PaneID:  strings.TrimSpace(parts[0]),
		Target:  strings.TrimSpace(parts[1]),
		Command: strings.TrimSpace(parts[2]),
		Title:   strings.TrimSpace(parts[4]),
		Active:  strings.TrimSpace(parts[5]) == "1",
	}
	if ed.PaneID == "" || !IsEditorCommand(ed.Command) {
		return Editor{}, false
	}
	ed.Path = documentPath(ed.Title, strings.TrimSpace(parts[3]))
	if ed.Path == "" {
		return Editor{}, false
	}
	return ed, true
}

func fallbackEditorLines(panes []*gotmux.Pane) []string {
	lines := make([]string, 0, len(panes))
	for _, p := range panes {
		if p == nil {
			continue
		}
		active := "0"
		if p.Active {
			active = "1"
		}
		lines = append(lines, strings.Join([]string{p.Id, p.Id, p.CurrentCommand, "", p.Title, active}, "\t"))
	}
	return lines
}

// documentPath guesses the edited file from the pane title. Editors put the
// file name first ("main.go (~/src/app) - NVIM", "vim main.go"), possibly
// relative to the pane's working directory.
func documentPath(title, cwd string) string {
	for _, candidate := range titleCandidates(title) {
		if strings.HasPrefix(candidate, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				candidate = filepath.Join(home, candidate[2:])
			}
		}
		if !filepath.IsAbs(candidate) {
			if cwd == "" {
				continue
			}
			candidate = filepath.Join(cwd, candidate)
		}
		info, err := statFile(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		return filepath.Clean(candidate)
	}
	return ""
}

func titleCandidates(title string) []string {
	var out []string
	for _, field := range strings.Fields(title) {
		field = strings.Trim(field, "\"'()[]")
		if field == "" || field == "-" || IsEditorCommand(field) {
			continue
		}
		if strings.HasPrefix(field, "+") || strings.HasPrefix(field, "-") {
			continue
		}
		out = append(out, field)
	}
	return out
}
