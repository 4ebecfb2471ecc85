package rule

import (
	"reflect"
	"testing"
)

func TestChainFirstMatchWins(t *testing.T) {
	chain := Chain{
		{Name: "never", Match: func(Context) (Spec, bool) { return Spec{}, false }},
		{Name: "git", Match: func(ctx Context) (Spec, bool) {
			if ctx.Attr("vcs") == "git" {
				return Spec{Both: []string{"git", "pos"}}, true
			}
			return Spec{}, false
		}},
		{Name: "greedy", Match: func(Context) (Spec, bool) {
			return Spec{Both: []string{"should-not-win"}}, true
		}},
	}

	spec, name, ok := chain.Detect(Context{Key: "k", Attrs: map[string]string{"vcs": "git"}})
	if !ok {
		t.Fatal("Detect should match")
	}
	if name != "git" {
		t.Errorf("winning detector = %q, want %q", name, "git")
	}
	if !reflect.DeepEqual(spec.Both, []string{"git", "pos"}) {
		t.Errorf("spec.Both = %v, want [git pos]", spec.Both)
	}
}

func TestChainNoMatch(t *testing.T) {
	chain := Chain{
		{Name: "a", Match: func(Context) (Spec, bool) { return Spec{}, false }},
	}
	if _, _, ok := chain.Detect(Context{}); ok {
		t.Fatal("Detect should not match")
	}
}

func TestChainSkipsNilMatch(t *testing.T) {
	chain := Chain{
		{Name: "broken"},
		{Name: "real", Match: func(Context) (Spec, bool) { return Spec{Both: []string{"x"}}, true }},
	}
	_, name, ok := chain.Detect(Context{})
	if !ok || name != "real" {
		t.Errorf("Detect = (%q, %v), want (real, true)", name, ok)
	}
}

func TestChainDeterministic(t *testing.T) {
	chain := Chain{
		{Name: "d", Match: func(ctx Context) (Spec, bool) {
			return Spec{Both: []string{ctx.Attr("mode")}}, ctx.Attr("mode") != ""
		}},
	}
	ctx := Context{Key: "same", Attrs: map[string]string{"mode": "org"}}

	first, _, _ := chain.Detect(ctx)
	second, _, _ := chain.Detect(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same context produced different specs: %+v vs %+v", first, second)
	}
}

func TestContextAttrMissing(t *testing.T) {
	var ctx Context
	if got := ctx.Attr("anything"); got != "" {
		t.Errorf("Attr on empty context = %q, want empty", got)
	}
}
