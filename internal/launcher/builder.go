// internal/launcher/builder.go
package launcher

import (
	cfg "github.com/drafel/battmon/internal/config"
)

// Build constructs a Launcher from the loaded configuration.
// Config must already be validated and normalized.
func Build(lc cfg.LauncherConfig) (*Launcher, error) {
	return New(Config{
		ProjectDir: lc.ProjectDir,
		Venv:       lc.Venv,
		App:        lc.App,
		Host:       lc.Host,
		Port:       lc.Port,
		LogFile:    lc.LogFile,
	})
}
