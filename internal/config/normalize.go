// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultApp  = "main:app"
	DefaultHost = "0.0.0.0"
	DefaultPort = 8000

	// DefaultTimeoutMs bounds one probe. The deployed curl probe had no
	// timeout at all; an unbounded wait cannot detect a hung service.
	DefaultTimeoutMs = 5000

	// DefaultIntervalMs matches the original cron cadence (5 minutes).
	DefaultIntervalMs = 300000
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	l := &cfg.Launcher

	if l.App == "" {
		l.App = DefaultApp
	}
	if l.Host == "" {
		l.Host = DefaultHost
	}
	if l.Port == 0 {
		l.Port = DefaultPort
	}

	m := &cfg.Monitor

	if m.TimeoutMs == 0 {
		m.TimeoutMs = DefaultTimeoutMs
	}
	if m.IntervalMs == 0 {
		m.IntervalMs = DefaultIntervalMs
	}
}
