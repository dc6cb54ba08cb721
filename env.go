package minimake

import (
	"path/filepath"
)

// env is the session environment of a builder. It owns the rule file
// label and the command runner, and maps target names to filesystem
// paths.
type env struct {
	workDir string
	file    string // rule file name, also the diagnostics label
	runner  Runner
}

func (e *env) path(name string) string {
	return filepath.Join(e.workDir, filepath.FromSlash(name))
}

func (e *env) rulePath() string { return e.path(e.file) }
