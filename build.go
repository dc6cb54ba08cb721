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
	"log"

	"shanhu.io/misc/errcode"
)

// buildContext carries the state of one executor pass over a dependency
// chain.
type buildContext struct {
	env  *env
	file *File
}

// makeTarget runs every command of r in declaration order, synchronously,
// and stops at the first command that fails to run or exits non-zero.
// Side effects of commands that already ran are permanent.
func (c *buildContext) makeTarget(r *Rule) error {
	for _, cmd := range r.Commands {
		log.Println(cmd)
		status, err := c.env.runner.Run(cmd)
		if err != nil {
			return errcode.Annotatef(err, "run %q", cmd)
		}
		if status != 0 {
			return errcode.Internalf("command %q failed", cmd)
		}
	}
	return nil
}

// buildTarget brings one chain entry up to date. Its dependencies are
// guaranteed to have been visited already by the leaves-first walk.
func (c *buildContext) buildTarget(name string) error {
	stat, err := newFileStat(c.env, name)
	if err != nil {
		if !errcode.IsNotFound(err) {
			return errcode.Annotatef(err, "stat %s", name)
		}

		// Missing on disk; it must be built by its rule.
		r := c.file.findRule(name)
		if r == nil {
			return errcode.NotFoundf("no rule to make %q", name)
		}
		log.Printf("BUILD %s", name)
		if err := c.makeTarget(r); err != nil {
			return err
		}

		// A rule is presumed to create a file named like its target.
		if _, err := newFileStat(c.env, name); err != nil {
			if errcode.IsNotFound(err) {
				return errcode.Internalf(
					"rule %q should have created %q, but did not",
					r.Target, name,
				)
			}
			return errcode.Annotatef(err, "stat %s after build", name)
		}
		return nil
	}

	r := c.file.findRule(name)
	if r == nil {
		// An existing file with no rule is an up-to-date source file.
		log.Printf("%s is a source file", name)
		return nil
	}

	for _, dep := range r.Deps {
		depStat, err := newFileStat(c.env, dep)
		if err != nil {
			if errcode.IsNotFound(err) {
				return errcode.Internalf(
					"dependency %q of %q not satisfied; "+
						"is something else modifying the file system?",
					dep, name,
				)
			}
			return errcode.Annotatef(err, "stat dependency %s", dep)
		}
		if depStat.ModTimestamp > stat.ModTimestamp {
			log.Printf("BUILD %s", name)
			if err := c.makeTarget(r); err != nil {
				return errcode.Annotate(err, "rebuild due to mtime")
			}
			break // one rebuild per target per pass
		}
	}
	return nil
}

// buildChain walks chain from its last entry to its first, which is the
// leaves-first order, and brings every entry up to date.
func buildChain(env *env, f *File, chain []string) error {
	c := &buildContext{env: env, file: f}
	for i := len(chain) - 1; i >= 0; i-- {
		if err := c.buildTarget(chain[i]); err != nil {
			return err
		}
	}
	return nil
}
