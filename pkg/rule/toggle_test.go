package rule

import (
	"reflect"
	"testing"
)

func TestApplyForcedOnAppends(t *testing.T) {
	tg := NewToggles()
	tg.Set("x", true)

	got := tg.Apply([]string{"a", "b"})
	want := []string{"a", "b", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestApplyForcedOnAlreadyPresent(t *testing.T) {
	tg := NewToggles()
	tg.Set("a", true)

	got := tg.Apply([]string{"a", "b"})
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply = %v, want %v (no duplicate append)", got, want)
	}
}

func TestApplyForcedOffRemovesEverywhere(t *testing.T) {
	tg := NewToggles()
	tg.Set("x", false)

	got := tg.Apply([]string{"x", "y", "x"})
	want := []string{"y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestApplyNoOverridesPassesThrough(t *testing.T) {
	tg := NewToggles()
	base := []string{"a", "b"}
	got := tg.Apply(base)
	if !reflect.DeepEqual(got, base) {
		t.Errorf("Apply = %v, want %v", got, base)
	}
}

func TestApplyDoesNotMutateBase(t *testing.T) {
	tg := NewToggles()
	tg.Set("a", false)
	base := []string{"a", "b"}
	tg.Apply(base)
	if !reflect.DeepEqual(base, []string{"a", "b"}) {
		t.Errorf("base mutated to %v", base)
	}
}

func TestApplyForcedOnOrderIsStable(t *testing.T) {
	tg := NewToggles()
	tg.Set("z", true)
	tg.Set("m", true)
	tg.Set("a", true)

	got := tg.Apply(nil)
	want := []string{"z", "m", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply = %v, want %v (first-override order)", got, want)
	}
}

func TestToggleInvertsCurrentVisibility(t *testing.T) {
	tg := NewToggles()

	// "x" is currently visible in the effective list: first toggle hides it.
	tg.Toggle("x", true)
	got := tg.Apply([]string{"x", "y"})
	if !reflect.DeepEqual(got, []string{"y"}) {
		t.Errorf("after first toggle Apply = %v, want [y]", got)
	}

	// Second toggle: "x" is now hidden, so it comes back.
	tg.Toggle("x", false)
	got = tg.Apply([]string{"x", "y"})
	if !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("after second toggle Apply = %v, want [x y]", got)
	}
}

func TestToggleAbsentNameForcesOn(t *testing.T) {
	tg := NewToggles()

	// "proc" is not in the base list, so it counts as hidden; the first
	// toggle makes it visible.
	tg.Toggle("proc", false)
	got := tg.Apply([]string{"mode"})
	if !reflect.DeepEqual(got, []string{"mode", "proc"}) {
		t.Errorf("Apply = %v, want [mode proc]", got)
	}
}

func TestResetClearsOverrides(t *testing.T) {
	tg := NewToggles()
	tg.Set("x", false)
	tg.Set("q", true)
	tg.Reset()

	got := tg.Apply([]string{"x"})
	if !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("Apply after Reset = %v, want [x]", got)
	}
	if _, ok := tg.Overridden("q"); ok {
		t.Error("Overridden should report no override after Reset")
	}
}

func TestOverridden(t *testing.T) {
	tg := NewToggles()
	if _, ok := tg.Overridden("x"); ok {
		t.Fatal("fresh overlay should have no overrides")
	}
	tg.Set("x", false)
	enabled, ok := tg.Overridden("x")
	if !ok || enabled {
		t.Errorf("Overridden = (%v, %v), want (false, true)", enabled, ok)
	}
}
