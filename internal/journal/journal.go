// internal/journal/journal.go
package journal

import (
	"errors"
	"fmt"
	"os"
)

const fileMode = 0o644

// Journal is an append-only line log.
// Records are only ever added at the end, never rewritten or removed.
type Journal struct {
	path string
}

// New creates a journal handle. No IO happens until Ensure or Append.
func New(path string) (*Journal, error) {
	if path == "" {
		return nil, errors.New("journal: path required")
	}
	return &Journal{path: path}, nil
}

// Path returns the journal file path.
func (j *Journal) Path() string {
	return j.path
}

// Ensure creates the journal file when absent and applies the expected mode.
// Mode correction on an already-existing file is best-effort and never
// fails the run.
func (j *Journal) Ensure() error {
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fileMode)
	if err != nil {
		return fmt.Errorf("journal: ensure %s: %w", j.path, err)
	}

	_ = f.Chmod(fileMode)

	return f.Close()
}

// Append writes exactly one line at the end of the journal.
// The file is opened in append mode on every call so overlapping cron
// invocations stay line-atomic; existing content is never truncated.
func (j *Journal) Append(line string) error {
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fileMode)
	if err != nil {
		return fmt.Errorf("journal: open %s: %w", j.path, err)
	}

	_, werr := f.WriteString(line + "\n")
	cerr := f.Close()

	if werr != nil {
		return fmt.Errorf("journal: append %s: %w", j.path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("journal: close %s: %w", j.path, cerr)
	}

	return nil
}
