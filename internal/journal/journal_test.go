// internal/journal/journal_test.go
package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_RequiresPath(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestEnsure_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.log")

	j, err := New(path)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if err := j.Ensure(); err != nil {
		t.Fatalf("Ensure() err=%v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("journal file missing: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("fresh journal must be empty, got %d bytes", info.Size())
	}
}

func TestEnsure_DoesNotTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.log")

	prior := "2026-03-14T09:26:53Z OK - FastAPI is up\n"
	if err := os.WriteFile(path, []byte(prior), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	j, _ := New(path)
	if err := j.Ensure(); err != nil {
		t.Fatalf("Ensure() err=%v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != prior {
		t.Fatalf("Ensure touched existing content:\n got %q\nwant %q", got, prior)
	}
}

func TestAppend_OneLinePerCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.log")
	j, _ := New(path)

	lines := []string{
		"2026-03-14T09:26:53Z OK - FastAPI is up",
		"2026-03-14T09:31:53Z ERROR - FastAPI returned 503",
		"2026-03-14T09:36:53Z ERROR - FastAPI returned 000",
	}

	for _, l := range lines {
		if err := j.Append(l); err != nil {
			t.Fatalf("Append(%q) err=%v", l, err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	got := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	if len(got) != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), len(got))
	}
	for i := range lines {
		if got[i] != lines[i] {
			t.Fatalf("line %d: got %q want %q", i, got[i], lines[i])
		}
	}
}

func TestAppend_PreservesPriorContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.log")

	prior := "2026-03-14T09:26:53Z OK - FastAPI is up\n"
	if err := os.WriteFile(path, []byte(prior), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	j, _ := New(path)
	if err := j.Append("2026-03-14T09:31:53Z OK - FastAPI is up"); err != nil {
		t.Fatalf("Append() err=%v", err)
	}

	raw, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(raw), prior) {
		t.Fatalf("prior content rewritten: %q", raw)
	}
	if want := prior + "2026-03-14T09:31:53Z OK - FastAPI is up\n"; string(raw) != want {
		t.Fatalf("got %q want %q", raw, want)
	}
}
