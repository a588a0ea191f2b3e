// internal/launcher/launcher.go
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrProjectDirMissing is returned when the configured project directory
// does not exist. Nothing is started in that case.
var ErrProjectDirMissing = errors.New("launcher: project directory missing")

// Config is the minimal runtime config the launcher needs.
type Config struct {
	ProjectDir string
	Venv       string
	App        string
	Host       string
	Port       int
	LogFile    string
}

// Launcher starts the backend exactly once, detached.
// It requests the child's creation and forgets it; lifecycle ownership
// stays with the operating system.
type Launcher struct {
	cfg Config
}

// New creates a launcher with immutable config.
func New(cfg Config) (*Launcher, error) {
	if cfg.ProjectDir == "" {
		return nil, errors.New("launcher: project dir required")
	}
	if cfg.Venv == "" {
		return nil, errors.New("launcher: venv required")
	}
	if cfg.App == "" {
		return nil, errors.New("launcher: app required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, errors.New("launcher: port out of range")
	}
	if cfg.LogFile == "" {
		return nil, errors.New("launcher: log file required")
	}
	return &Launcher{cfg: cfg}, nil
}

// Launch starts the backend in its own session and returns its PID.
// Both output streams go to the append-only service log. The launcher
// never waits on the child.
func (l *Launcher) Launch() (int, error) {
	info, err := os.Stat(l.cfg.ProjectDir)
	if err != nil || !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrProjectDirMissing, l.cfg.ProjectDir)
	}

	logf, err := os.OpenFile(l.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("launcher: open log %s: %w", l.cfg.LogFile, err)
	}
	defer logf.Close()

	cmd := exec.Command(l.command(), l.args()...)
	cmd.Dir = l.cfg.ProjectDir
	cmd.Env = l.environ(os.Environ())
	cmd.Stdout = logf
	cmd.Stderr = logf
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("launcher: start: %w", err)
	}

	pid := cmd.Process.Pid

	// Drop the handle; the child is the OS's problem from here on.
	_ = cmd.Process.Release()

	return pid, nil
}

// command resolves the venv's own uvicorn so the right interpreter and
// dependency set are used without sourcing an activate script.
func (l *Launcher) command() string {
	return filepath.Join(l.cfg.Venv, "bin", "uvicorn")
}

func (l *Launcher) args() []string {
	return []string{
		l.cfg.App,
		"--host", l.cfg.Host,
		"--port", strconv.Itoa(l.cfg.Port),
	}
}

// environ mirrors venv activation: venv/bin first on PATH, VIRTUAL_ENV set,
// PYTHONHOME and any previous VIRTUAL_ENV dropped.
func (l *Launcher) environ(base []string) []string {
	venvBin := filepath.Join(l.cfg.Venv, "bin")

	env := make([]string, 0, len(base)+2)
	sawPath := false

	for _, kv := range base {
		switch {
		case strings.HasPrefix(kv, "PYTHONHOME="):
			continue
		case strings.HasPrefix(kv, "VIRTUAL_ENV="):
			continue
		case strings.HasPrefix(kv, "PATH="):
			sawPath = true
			env = append(env, "PATH="+venvBin+string(os.PathListSeparator)+strings.TrimPrefix(kv, "PATH="))
		default:
			env = append(env, kv)
		}
	}

	if !sawPath {
		env = append(env, "PATH="+venvBin)
	}

	env = append(env, "VIRTUAL_ENV="+l.cfg.Venv)
	return env
}
