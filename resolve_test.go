package minimake

import (
	"strings"
	"testing"
)

func parseForTest(t *testing.T, src string) *File {
	t.Helper()
	f, errs := parseRules("f", src)
	if errs != nil {
		t.Fatalf("parse: %v", errs[0])
	}
	return f
}

func checkChain(t *testing.T, got []string, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("chain is %q, want %q", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("chain[%d] is %q, want %q", i, got[i], name)
		}
	}
}

func TestResolve(t *testing.T) {
	f := parseForTest(t, "A: B\nB: C D\n")

	chain, err := f.Resolve("A")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	checkChain(t, chain, []string{"A", "B", "C", "D"})
}

func TestResolveKeepsDuplicates(t *testing.T) {
	// A name that is a dependency of two parents appears twice.
	f := parseForTest(t, "top: a b\na: shared\n\ttouch a\nb: shared\n\ttouch b\n")

	chain, err := f.Resolve("top")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	checkChain(t, chain, []string{"top", "a", "b", "shared", "shared"})
}

func TestResolveNoRule(t *testing.T) {
	// Resolution never fails on an unknown name; that only matters at
	// build time.
	f := parseForTest(t, "A: B\n")

	chain, err := f.Resolve("other")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	checkChain(t, chain, []string{"other"})
}

func TestResolveFirstRuleWins(t *testing.T) {
	f := parseForTest(t, "A: first\n\ttouch A\nA: second\n\ttouch A\n")

	chain, err := f.Resolve("A")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	checkChain(t, chain, []string{"A", "first"})
}

func TestResolveCycle(t *testing.T) {
	for _, test := range []struct {
		name string
		src  string
	}{
		{"self", "a: a\n\ttouch a\n"},
		{"pair", "a: b\nb: a\n"},
		{"deep", "a: b\nb: c\nc: a\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			f := parseForTest(t, test.src)
			if _, err := f.Resolve("a"); err == nil {
				t.Error("resolve succeeded, want circular dependency error")
			} else if !strings.Contains(err.Error(), "circular") {
				t.Errorf("error is %q, want circular dependency", err)
			}
		})
	}
}

func TestResolveDiamondIsNotCycle(t *testing.T) {
	// A diamond shares a dependency without looping.
	f := parseForTest(t, "top: a b\na: base\n\ttouch a\nb: base\n\ttouch b\n")
	if _, err := f.Resolve("top"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
}

func TestDefaultTarget(t *testing.T) {
	f := parseForTest(t, "first:\n\ttouch first\nsecond:\n\ttouch second\n")
	if got := f.DefaultTarget(); got != "first" {
		t.Errorf("default target is %q, want first", got)
	}

	empty := parseForTest(t, "")
	if got := empty.DefaultTarget(); got != "" {
		t.Errorf("default target of empty file is %q, want empty", got)
	}
}
