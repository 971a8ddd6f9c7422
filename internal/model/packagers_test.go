package model

import (
	"slices"
	"testing"
)

func TestSnapLocalPlugsDeduplicate(t *testing.T) {
	t.Parallel()

	snap := NewSnap()
	snap.SetLocalPlugs([]string{"network", " home ", "network", ""})
	if got, want := snap.LocalPlugs(), []string{"network", "home"}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	snap.RemoveLocalPlug(" network")
	snap.AddLocalPlug("x11")
	if got, want := snap.LocalPlugs(), []string{"home", "x11"}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	plugs := snap.LocalPlugs()
	plugs[0] = "mutated"
	if snap.LocalPlugs()[0] != "home" {
		t.Fatalf("expected LocalPlugs to return a copy")
	}
}

func TestPackagersGet(t *testing.T) {
	t.Parallel()

	var p Packagers
	for _, kind := range AllPackagerKinds {
		if p.Get(kind) != nil {
			t.Fatalf("expected nil tool for unset %s", kind)
		}
	}
	if !p.IsEmpty() {
		t.Fatalf("expected empty packagers")
	}

	p.Snap = NewSnap()
	tool := p.Get(SnapKind)
	if tool == nil || tool.Name() != SnapName {
		t.Fatalf("expected snap tool, got %v", tool)
	}
}

func TestSlotCloneIsDeep(t *testing.T) {
	t.Parallel()

	slot := Slot{Name: "dbus", Attributes: map[string]string{"bus": "session"}, Reads: []string{"a"}}
	clone := slot.Clone()
	clone.Attributes["bus"] = "system"
	clone.Reads[0] = "b"

	if slot.Attributes["bus"] != "session" || slot.Reads[0] != "a" {
		t.Fatalf("expected clone to be independent, original now %+v", slot)
	}
}
