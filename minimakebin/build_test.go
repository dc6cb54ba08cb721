package minimakebin

import (
	"os"
	"path/filepath"
	"testing"

	"shanhu.io/minimake"
)

func TestNewBuilderDir(t *testing.T) {
	// The -dir flag points the builder at a directory other than the
	// current one.
	dir := t.TempDir()
	f := filepath.Join(dir, minimake.RuleFileName)
	if err := os.WriteFile(f, []byte("out:\n\ttouch out\n"), 0600); err != nil {
		t.Fatalf("write rule file: %v", err)
	}

	opts := newBuildOptions()
	opts.dir = dir
	b, _, err := newBuilder(opts)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	rules, errs := b.ReadRules()
	if errs != nil {
		t.Fatalf("read rules: %v", errs[0])
	}
	if got := rules.DefaultTarget(); got != "out" {
		t.Errorf("default target is %q, want out", got)
	}
}

func TestNewBuilderDirWorkspace(t *testing.T) {
	// The workspace file is read from the -dir directory as well.
	dir := t.TempDir()
	ws := filepath.Join(dir, minimake.WorkspaceFile)
	if err := os.WriteFile(ws, []byte(`{"File": "Rules.mk"}`), 0600); err != nil {
		t.Fatalf("write workspace: %v", err)
	}
	f := filepath.Join(dir, "Rules.mk")
	if err := os.WriteFile(f, []byte("all:\n\ttouch all\n"), 0600); err != nil {
		t.Fatalf("write rule file: %v", err)
	}

	opts := newBuildOptions()
	opts.dir = dir
	b, _, err := newBuilder(opts)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	rules, errs := b.ReadRules()
	if errs != nil {
		t.Fatalf("read rules: %v", errs[0])
	}
	if got := rules.DefaultTarget(); got != "all" {
		t.Errorf("default target is %q, want all", got)
	}
}
