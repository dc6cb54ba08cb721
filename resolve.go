package minimake

import (
	"shanhu.io/misc/errcode"
)

// ruleTracer tracks the path of rule expansion for cycle reporting.
type ruleTracer struct {
	trace []string
	m     map[string]bool
}

func newRuleTracer() *ruleTracer {
	return &ruleTracer{m: make(map[string]bool)}
}

// push adds name to the trace. It returns false when name is already on
// the trace, which means the expansion path loops back onto itself.
func (t *ruleTracer) push(name string) bool {
	if t.m[name] {
		return false
	}
	t.trace = append(t.trace, name)
	t.m[name] = true
	return true
}

func (t *ruleTracer) pop() {
	n := len(t.trace)
	if n == 0 {
		return
	}
	last := t.trace[n-1]
	delete(t.m, last)
	t.trace = t.trace[:n-1]
}

func (t *ruleTracer) stack() []string { return t.trace }

func (f *File) checkCycle(target string, t *ruleTracer) error {
	if !t.push(target) {
		return errcode.InvalidArgf(
			"%q has circular dependency: %q", target, t.stack(),
		)
	}
	defer t.pop()

	r := f.findRule(target)
	if r == nil {
		return nil
	}
	for _, dep := range r.Deps {
		if err := f.checkCycle(dep, t); err != nil {
			return err
		}
	}
	return nil
}

// Resolve expands target into its full dependency chain: index 0 is
// target itself, later entries are the dependencies discovered by
// breadth-first expansion over the rule table. A name that is a
// dependency of several parents appears once per parent; the duplicates
// are kept so that the executor re-checks staleness at each occurrence.
// Reversed, the chain is a valid leaves-first build order.
//
// A target with no rule is not an error here; it only becomes one at
// build time if the same-named file is also missing. Circular
// dependencies fail fast before any expansion.
func (f *File) Resolve(target string) ([]string, error) {
	if err := f.checkCycle(target, newRuleTracer()); err != nil {
		return nil, err
	}

	chain := []string{target}
	for i := 0; i < len(chain); i++ {
		r := f.findRule(chain[i])
		if r == nil {
			continue
		}
		chain = append(chain, r.Deps...)
	}
	return chain, nil
}
