// internal/config/config.go
package config

type Config struct {
	Launcher LauncherConfig `yaml:"launcher"`
	Monitor  MonitorConfig  `yaml:"monitor"`
}

// ---- LAUNCHER ----

type LauncherConfig struct {
	// ProjectDir is the backend checkout; working directory of the child.
	ProjectDir string `yaml:"project_dir"`

	// Venv is the isolated Python environment root.
	Venv string `yaml:"venv"`

	// App is the ASGI module:attribute passed to uvicorn.
	App string `yaml:"app"`

	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// LogFile receives the child's stdout and stderr, append-only.
	LogFile string `yaml:"log_file"`
}

// ---- MONITOR ----

type MonitorConfig struct {
	// URL is the probed endpoint; the backend answers 200 on its root path
	// when healthy.
	URL string `yaml:"url"`

	// LogFile is the append-only health journal.
	LogFile string `yaml:"log_file"`

	TimeoutMs  int `yaml:"timeout_ms"`
	IntervalMs int `yaml:"interval_ms"`

	// StatusListen enables the monitor's own HTTP status endpoint in watch
	// mode when non-empty, e.g. "127.0.0.1:8090".
	StatusListen string `yaml:"status_listen"`
}
