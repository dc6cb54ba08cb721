package minimake

import (
	"shanhu.io/text/lexing"
)

// Rule is one recipe of a rule file: the target it produces, the targets
// or files it depends on, and the shell commands that produce it. All
// string fields are views into the rule file's source buffer. A rule is
// never mutated after parsing.
type Rule struct {
	Target   string
	Deps     []string
	Commands []string

	Pos *lexing.Pos // position of the target word
}

// File is an ordered table of parsed rules.
type File struct {
	Name  string // rule file label for diagnostics
	Rules []*Rule
}

// findRule returns the first rule declared for target, in declaration
// order, or nil when no rule declares it.
func (f *File) findRule(target string) *Rule {
	for _, r := range f.Rules {
		if r.Target == target {
			return r
		}
	}
	return nil
}

// DefaultTarget returns the target of the first rule in the file, or an
// empty string when the file has no rules.
func (f *File) DefaultTarget() string {
	if len(f.Rules) == 0 {
		return ""
	}
	return f.Rules[0].Target
}
