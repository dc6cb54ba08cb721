package minimake

import (
	"shanhu.io/text/lexing"
)

// Token types of the rule file grammar.
const (
	tokWord = iota
	tokColon
	tokNewline
	tokCommand
)

func tokTypeStr(t int) string {
	switch t {
	case tokWord:
		return "word"
	case tokColon:
		return "colon"
	case tokNewline:
		return "newline"
	case tokCommand:
		return "command"
	}
	return "unknown"
}

// token is one lexical token of a rule file. lit is a view into the rule
// file's source buffer, not a copy; it stays valid as long as the buffer
// does.
type token struct {
	typ int
	lit string
	pos *lexing.Pos
}
