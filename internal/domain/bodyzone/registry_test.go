package bodyzone

import (
	"errors"
	"testing"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/clinicalerr"
)

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func TestNewRegistry_BuiltinTreeIsValid(t *testing.T) {
	mustRegistry(t)
}

func TestRegistry_Zone(t *testing.T) {
	r := mustRegistry(t)
	d, err := r.Zone("chest.left_parasternal")
	if err != nil {
		t.Fatalf("Zone: %v", err)
	}
	if d.Priority < 8 {
		t.Errorf("chest.left_parasternal priority = %d, want >= 8", d.Priority)
	}
	if !d.Terminal {
		t.Error("chest.left_parasternal should be terminal")
	}
	if d.Label.EN == "" || d.Label.AR == "" {
		t.Error("zone must carry both labels")
	}
}

func TestRegistry_Zone_Unknown(t *testing.T) {
	r := mustRegistry(t)
	_, err := r.Zone("chest.nothere")
	if err == nil {
		t.Fatal("expected error for unknown zone")
	}
	if !errors.Is(err, clinicalerr.ErrUnknownZone) {
		t.Errorf("expected UNKNOWN_ZONE code, got %v", err)
	}
}

func TestRegistry_Children(t *testing.T) {
	r := mustRegistry(t)
	children, err := r.Children("chest")
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(children) != 5 {
		t.Fatalf("chest children = %d, want 5", len(children))
	}
	for _, c := range children {
		if c.ParentID != "chest" {
			t.Errorf("child %s has parent %q", c.ID, c.ParentID)
		}
	}
}

func TestRegistry_ZonePath(t *testing.T) {
	r := mustRegistry(t)
	path, err := r.ZonePath("abdomen.upper.epigastric")
	if err != nil {
		t.Fatalf("ZonePath: %v", err)
	}
	if len(path) != 3 {
		t.Fatalf("path length = %d, want 3 (root to leaf)", len(path))
	}
	if path[0].EN != "Abdomen" {
		t.Errorf("path root = %q, want Abdomen", path[0].EN)
	}
	if path[2].AR == "" {
		t.Error("leaf label must carry the Arabic label")
	}
}

func TestRegistry_ZonesByCategory(t *testing.T) {
	r := mustRegistry(t)
	zones := r.ZonesByCategory(CategoryChest)
	if len(zones) == 0 {
		t.Fatal("no chest zones")
	}
	for _, z := range zones {
		if z.Category != CategoryChest {
			t.Errorf("zone %s category = %s", z.ID, z.Category)
		}
	}
}

func TestRegistry_TerminalZones(t *testing.T) {
	r := mustRegistry(t)
	terminals := r.TerminalZones()
	if len(terminals) == 0 {
		t.Fatal("no terminal zones")
	}
	for _, z := range terminals {
		if !z.Terminal {
			t.Errorf("zone %s is not terminal", z.ID)
		}
		if len(z.ChildIDs) != 0 {
			t.Errorf("terminal zone %s has children", z.ID)
		}
	}
}

func TestNewRegistry_RejectsDanglingParent(t *testing.T) {
	_, err := newRegistry([]*Definition{
		{ID: "a", Label: Label{EN: "A", AR: "أ"}, Category: CategoryHead, Priority: 5, Terminal: true, ParentID: "missing"},
	})
	if err == nil {
		t.Error("expected error for dangling parent")
	}
}

func TestNewRegistry_RejectsOneSidedChildLink(t *testing.T) {
	_, err := newRegistry([]*Definition{
		{ID: "a", Label: Label{EN: "A", AR: "أ"}, Category: CategoryHead, Priority: 5, ChildIDs: []string{"a.b"}},
		{ID: "a.b", Label: Label{EN: "B", AR: "ب"}, Category: CategoryHead, Priority: 5, Terminal: true}, // no ParentID
	})
	if err == nil {
		t.Error("expected error when child does not point back to parent")
	}
}

func TestNewRegistry_RejectsDuplicateIDs(t *testing.T) {
	_, err := newRegistry([]*Definition{
		{ID: "a", Label: Label{EN: "A", AR: "أ"}, Category: CategoryHead, Priority: 5, Terminal: true},
		{ID: "a", Label: Label{EN: "A2", AR: "أ٢"}, Category: CategoryHead, Priority: 5, Terminal: true},
	})
	if err == nil {
		t.Error("expected error for duplicate ids")
	}
}

func TestNewRegistry_RejectsPriorityOutOfRange(t *testing.T) {
	_, err := newRegistry([]*Definition{
		{ID: "a", Label: Label{EN: "A", AR: "أ"}, Category: CategoryHead, Priority: 11, Terminal: true},
	})
	if err == nil {
		t.Error("expected error for priority > 10")
	}
}

func TestNewRegistry_RejectsCycle(t *testing.T) {
	_, err := newRegistry([]*Definition{
		{ID: "a", Label: Label{EN: "A", AR: "أ"}, Category: CategoryHead, Priority: 5, ParentID: "b", ChildIDs: []string{"b"}},
		{ID: "b", Label: Label{EN: "B", AR: "ب"}, Category: CategoryHead, Priority: 5, ParentID: "a", ChildIDs: []string{"a"}},
	})
	if err == nil {
		t.Error("expected error for parent cycle")
	}
}

func TestNewRegistry_RejectsTerminalWithChildren(t *testing.T) {
	_, err := newRegistry([]*Definition{
		{ID: "a", Label: Label{EN: "A", AR: "أ"}, Category: CategoryHead, Priority: 5, Terminal: true, ChildIDs: []string{"a.b"}},
		{ID: "a.b", Label: Label{EN: "B", AR: "ب"}, Category: CategoryHead, Priority: 5, Terminal: true, ParentID: "a"},
	})
	if err == nil {
		t.Error("expected error for terminal zone with children")
	}
}
