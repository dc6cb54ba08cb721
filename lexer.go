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
	"shanhu.io/text/lexing"
)

// tokenize scans src in a single forward pass and returns the flat token
// sequence. It cannot fail; every byte either produces a token, extends
// one, or is skipped. file is only a label for token positions.
//
// Grammar of the scan:
//   - '\n' is a newline token.
//   - ':' is a colon token.
//   - '#' starts a comment that runs to the end of the line; the
//     terminating newline is still tokenized.
//   - ' ' is skipped.
//   - '\t' starts a command token that spans the rest of the line,
//     excluding the tab and the newline.
//   - anything else starts a word token that runs until the next space,
//     tab, newline, or colon.
func tokenize(file, src string) []*token {
	var toks []*token

	line, col := 1, 1
	pos := func() *lexing.Pos {
		return &lexing.Pos{File: file, Line: line, Col: col}
	}

	for i := 0; i < len(src); i++ {
		switch c := src[i]; {
		case c == '\n':
			toks = append(toks, &token{
				typ: tokNewline, lit: src[i : i+1], pos: pos(),
			})
			line++
			col = 1
		case c == ':':
			toks = append(toks, &token{
				typ: tokColon, lit: src[i : i+1], pos: pos(),
			})
			col++
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
				col++
			}
			if i < len(src) {
				i-- // leave the newline for the next round
			}
		case c == ' ':
			col++
		case c == '\t':
			p := pos()
			start := i + 1
			i++
			col++
			for i < len(src) && src[i] != '\n' {
				i++
				col++
			}
			toks = append(toks, &token{
				typ: tokCommand, lit: src[start:i], pos: p,
			})
			if i < len(src) {
				i--
			}
		default:
			p := pos()
			start := i
			for i < len(src) && !isWordBreak(src[i]) {
				i++
				col++
			}
			toks = append(toks, &token{
				typ: tokWord, lit: src[start:i], pos: p,
			})
			i--
		}
	}

	return toks
}

func isWordBreak(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == ':'
}
