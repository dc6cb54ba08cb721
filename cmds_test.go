package minimake

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShellRunnerExitStatus(t *testing.T) {
	r := newShellRunner(t.TempDir(), "")

	status, err := r.Run("true")
	if err != nil {
		t.Fatalf("run true: %v", err)
	}
	if status != 0 {
		t.Errorf("true exited with %d, want 0", status)
	}

	status, err = r.Run("exit 3")
	if err != nil {
		t.Fatalf("run exit 3: %v", err)
	}
	if status != 3 {
		t.Errorf("exit 3 exited with %d, want 3", status)
	}
}

func TestShellRunnerWorkDir(t *testing.T) {
	// Commands run in the runner's directory.
	dir := t.TempDir()
	r := newShellRunner(dir, "")

	status, err := r.Run("touch made-here")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if status != 0 {
		t.Fatalf("touch exited with %d", status)
	}
	if _, err := os.Stat(filepath.Join(dir, "made-here")); err != nil {
		t.Errorf("file not created in work dir: %v", err)
	}
}
