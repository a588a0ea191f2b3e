//go:build !unix

// internal/launcher/detach_other.go
package launcher

import "os/exec"

// detach is a no-op where sessions do not exist; the child still outlives
// the launcher because nothing waits on it.
func detach(cmd *exec.Cmd) {}
