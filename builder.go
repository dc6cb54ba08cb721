// Copyright (C) 2022  Shanhu Tech Inc.
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License
// for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package minimake

import (
	"os"

	"shanhu.io/misc/errcode"
	"shanhu.io/text/lexing"
)

// RuleFileName is the fixed rule file name read from the working
// directory when no other name is configured.
const RuleFileName = "Minimakefile"

// Config provides the configuration to start a builder.
type Config struct {
	File  string // Rule file name. Default "Minimakefile".
	Shell string // Shell that runs rule commands. Default "/bin/sh".

	// Runner overrides the shell runner. Commands then run through it
	// instead of a subprocess shell.
	Runner Runner
}

// Builder brings targets up to date from a rule file.
type Builder struct {
	env  *env
	file *File
}

// NewBuilder creates a new builder that reads its rule file from workDir
// and resolves target paths relative to workDir.
func NewBuilder(workDir string, config *Config) *Builder {
	name := config.File
	if name == "" {
		name = RuleFileName
	}
	runner := config.Runner
	if runner == nil {
		runner = newShellRunner(workDir, config.Shell)
	}

	return &Builder{env: &env{
		workDir: workDir,
		file:    name,
		runner:  runner,
	}}
}

// ReadRules reads and parses the rule file into the build env. The file
// is read once; later calls return the same table. The raw file bytes are
// the sole backing of all rule strings and stay alive with the table.
func (b *Builder) ReadRules() (*File, []*lexing.Error) {
	if b.file != nil {
		return b.file, nil
	}

	bs, err := os.ReadFile(b.env.rulePath())
	if err != nil {
		return nil, lexing.SingleErr(errcode.Annotate(err, "read rule file"))
	}

	f, errs := parseRules(b.env.file, string(bs))
	if errs != nil {
		return nil, errs
	}
	b.file = f
	return f, nil
}

// Resolve expands target into its dependency chain. An empty target
// resolves the rule file's default (first) target.
func (b *Builder) Resolve(target string) ([]string, []*lexing.Error) {
	f, errs := b.ReadRules()
	if errs != nil {
		return nil, errs
	}
	target, err := b.pickTarget(f, target)
	if err != nil {
		return nil, lexing.SingleErr(err)
	}
	chain, err := f.Resolve(target)
	if err != nil {
		return nil, lexing.SingleErr(err)
	}
	return chain, nil
}

// Build brings target and everything it transitively depends on up to
// date. An empty target builds the rule file's default (first) target.
func (b *Builder) Build(target string) []*lexing.Error {
	f, errs := b.ReadRules()
	if errs != nil {
		return errs
	}
	target, err := b.pickTarget(f, target)
	if err != nil {
		return lexing.SingleErr(err)
	}

	chain, err := f.Resolve(target)
	if err != nil {
		return lexing.SingleErr(err)
	}
	if err := buildChain(b.env, f, chain); err != nil {
		return lexing.SingleErr(errcode.Annotatef(err, "build %q", target))
	}
	return nil
}

func (b *Builder) pickTarget(f *File, target string) (string, error) {
	if target != "" {
		return target, nil
	}
	if t := f.DefaultTarget(); t != "" {
		return t, nil
	}
	return "", errcode.InvalidArgf("no rules in %s", b.env.file)
}
