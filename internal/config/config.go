package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/navsync/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose     bool
	PollEditors bool
}

const (
	envWorkspace   = "NAVSYNC_WORKSPACE"
	envSocketPath  = "NAVSYNC_SOCKET"
	envTmuxEditors = "NAVSYNC_TMUX_EDITORS"
	envPoll        = "NAVSYNC_POLL"
	envSessionDir  = "NAVSYNC_SESSION_DIR"
	envWidth       = "NAVSYNC_WIDTH"
	envHeight      = "NAVSYNC_HEIGHT"
	envShowFooter  = "NAVSYNC_FOOTER"
	envVerbose     = "NAVSYNC_VERBOSE"
	envTrace       = "NAVSYNC_TRACE"
	envLogFile     = "NAVSYNC_LOG_FILE"

	defaultWorkspace = "navsync.yaml"
	defaultPoll      = 1500 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("navsync", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	workspace := fs.String("workspace", envOrDefault(env, envWorkspace, defaultWorkspace), "path to the YAML workspace file")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket used for editor discovery")
	tmuxEditors := fs.Bool("tmux-editors", envOrBool(env, envTmuxEditors, false), "show editors running in tmux panes")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, defaultPoll), "tmux editor poll interval")
	sessionDir := fs.String("session-dir", envOrDefault(env, envSessionDir, ""), "directory for session restore (empty disables)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print status messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			WorkspacePath: *workspace,
			SocketPath:    *socket,
			PollEditors:   *tmuxEditors,
			PollInterval:  *poll,
			SessionDir:    *sessionDir,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:     *verbose,
			PollEditors: *tmuxEditors,
		},
		Flags: map[string]string{
			"workspace":   *workspace,
			"socket":      *socket,
			"tmuxEditors": strconv.FormatBool(*tmuxEditors),
			"poll":        poll.String(),
			"sessionDir":  *sessionDir,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
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

// Validate rejects configurations the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive (got %s)", cfg.App.PollInterval)
	}
	if strings.TrimSpace(cfg.App.WorkspacePath) == "" {
		return fmt.Errorf("workspace path required")
	}
	return nil
}
