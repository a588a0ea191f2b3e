// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// LAUNCHER
	// ------------------------------------------------------------

	l := cfg.Launcher

	if l.ProjectDir == "" {
		return fmt.Errorf("launcher: project_dir is required")
	}
	if l.Venv == "" {
		return fmt.Errorf("launcher: venv is required")
	}
	if l.LogFile == "" {
		return fmt.Errorf("launcher: log_file is required")
	}

	// Zero port means "use the default"; Normalize fills it in.
	if l.Port < 0 || l.Port > 65535 {
		return fmt.Errorf("launcher: port %d out of range", l.Port)
	}

	// ------------------------------------------------------------
	// MONITOR
	// ------------------------------------------------------------

	m := cfg.Monitor

	if m.URL == "" {
		return fmt.Errorf("monitor: url is required")
	}

	u, err := url.Parse(m.URL)
	if err != nil {
		return fmt.Errorf("monitor: url %q: %w", m.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("monitor: url %q: scheme must be http or https", m.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("monitor: url %q: host is required", m.URL)
	}

	if m.LogFile == "" {
		return fmt.Errorf("monitor: log_file is required")
	}

	if m.TimeoutMs < 0 {
		return fmt.Errorf("monitor: timeout_ms must be >= 0")
	}
	if m.IntervalMs < 0 {
		return fmt.Errorf("monitor: interval_ms must be >= 0")
	}

	return nil
}
