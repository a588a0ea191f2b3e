//go:build unix

// internal/launcher/detach_unix.go
package launcher

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so it survives the launcher's
// exit and never receives the launcher's terminal signals.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
