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
	"errors"
	"fmt"

	"shanhu.io/text/lexing"
)

// Per-rule limits. Exceeding either one is a fatal parse error, not a
// silent truncation.
const (
	maxDependencies = 64
	maxCommands     = 128
)

// parseRules tokenizes src and parses the token sequence into a rule
// table. Parsing is all or nothing: the first error aborts the parse and
// discards all partial state.
//
// The grammar, one rule per recipe:
//
//	recipe       = WORD COLON dependencies NEWLINE commands
//	dependencies = WORD*
//	commands     = (COMMAND NEWLINE)*
//
// Blank lines between recipes are skipped. A rule must have at least one
// command line unless the file (or the next rule) immediately follows. A
// missing newline after the last command of the file is tolerated.
func parseRules(file, src string) (*File, []*lexing.Error) {
	p := &parser{file: file, toks: tokenize(file, src)}
	f := &File{Name: file}

	for {
		for p.see(tokNewline) {
			p.next()
		}
		if p.done() {
			break
		}

		r, err := p.parseRule()
		if err != nil {
			return nil, []*lexing.Error{err}
		}
		f.Rules = append(f.Rules, r)
	}

	return f, nil
}

type parser struct {
	file string
	toks []*token
	i    int
}

func (p *parser) done() bool { return p.i >= len(p.toks) }

func (p *parser) see(typ int) bool {
	return !p.done() && p.toks[p.i].typ == typ
}

func (p *parser) next() *token {
	t := p.toks[p.i]
	p.i++
	return t
}

// expect consumes and returns the next token if it has the wanted type,
// and returns nil otherwise.
func (p *parser) expect(typ int) *token {
	if !p.see(typ) {
		return nil
	}
	return p.next()
}

// errExpected reports what was expected against the token actually found,
// or an end-of-file error when no token remains.
func (p *parser) errExpected(want string) *lexing.Error {
	if p.done() {
		return &lexing.Error{Err: fmt.Errorf(
			"%s: unexpected end of file, expected %s", p.file, want,
		)}
	}
	t := p.toks[p.i]
	return &lexing.Error{Pos: t.pos, Err: fmt.Errorf(
		"expected %s, got %s: %q", want, tokTypeStr(t.typ), t.lit,
	)}
}

func (p *parser) errAt(t *token, msg string) *lexing.Error {
	return &lexing.Error{Pos: t.pos, Err: errors.New(msg)}
}

func (p *parser) parseRule() (*Rule, *lexing.Error) {
	target := p.expect(tokWord)
	if target == nil {
		return nil, p.errExpected("target")
	}
	if p.expect(tokColon) == nil {
		return nil, p.errExpected("colon")
	}

	r := &Rule{Target: target.lit, Pos: target.pos}

	for p.see(tokWord) {
		if len(r.Deps) == maxDependencies {
			return nil, p.errAt(p.toks[p.i], "too many dependencies")
		}
		r.Deps = append(r.Deps, p.next().lit)
	}

	if p.expect(tokNewline) == nil {
		return nil, p.errExpected("newline")
	}

	if p.see(tokNewline) {
		// A blank line right after the dependency line means the rule
		// has no recipe at all.
		return nil, p.errExpected("command(s)")
	}

	for p.see(tokCommand) {
		if len(r.Commands) == maxCommands {
			return nil, p.errAt(p.toks[p.i], "too many commands")
		}
		r.Commands = append(r.Commands, p.next().lit)

		// The last command of the file may miss its newline.
		p.expect(tokNewline)
	}

	return r, nil
}
