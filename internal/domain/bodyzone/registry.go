package bodyzone

import (
	"fmt"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/clinicalerr"
)

// Registry is the read-only anatomical knowledge base. It is built once at
// process start from the fixed definition tree and validated at load time:
// ids are unique, every parent/child link resolves on both sides, and the
// tree has no cycles. Lookup is O(1) via the flat id map. The registry is
// never mutated after construction, so it is safe for concurrent use.
type Registry struct {
	byID  map[string]*Definition
	order []string // declaration order, for deterministic listings
}

// NewRegistry builds the registry from the built-in definition tree.
func NewRegistry() (*Registry, error) {
	return newRegistry(defaultDefinitions)
}

func newRegistry(defs []*Definition) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Definition, len(defs))}

	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("zone with empty id")
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate zone id %q", d.ID)
		}
		if d.Priority < 1 || d.Priority > 10 {
			return nil, fmt.Errorf("zone %q: priority %d out of range [1,10]", d.ID, d.Priority)
		}
		if d.Terminal && len(d.ChildIDs) > 0 {
			return nil, fmt.Errorf("zone %q: terminal zones cannot have children", d.ID)
		}
		r.byID[d.ID] = d
		r.order = append(r.order, d.ID)
	}

	// Resolve links after the full map exists.
	for _, d := range defs {
		if d.ParentID != "" {
			parent, ok := r.byID[d.ParentID]
			if !ok {
				return nil, fmt.Errorf("zone %q: parent %q does not exist", d.ID, d.ParentID)
			}
			if !containsID(parent.ChildIDs, d.ID) {
				return nil, fmt.Errorf("zone %q: parent %q does not list it as a child", d.ID, d.ParentID)
			}
		}
		for _, childID := range d.ChildIDs {
			child, ok := r.byID[childID]
			if !ok {
				return nil, fmt.Errorf("zone %q: child %q does not exist", d.ID, childID)
			}
			if child.ParentID != d.ID {
				return nil, fmt.Errorf("zone %q: child %q points to parent %q", d.ID, childID, child.ParentID)
			}
		}
	}

	// Cycle check: every zone must reach a root within the tree size.
	for _, d := range defs {
		seen := 0
		for cur := d; cur.ParentID != ""; cur = r.byID[cur.ParentID] {
			seen++
			if seen > len(defs) {
				return nil, fmt.Errorf("zone %q: parent chain contains a cycle", d.ID)
			}
		}
	}

	return r, nil
}

// Zone returns the definition for id. Unknown ids are rejected with a coded
// error; the registry never auto-creates zones.
func (r *Registry) Zone(id string) (*Definition, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, unknownZone(id)
	}
	return d, nil
}

// Children returns the direct child definitions of id, in declared order.
func (r *Registry) Children(id string) ([]*Definition, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, unknownZone(id)
	}
	children := make([]*Definition, 0, len(d.ChildIDs))
	for _, childID := range d.ChildIDs {
		children = append(children, r.byID[childID])
	}
	return children, nil
}

// ZonePath returns the root-to-leaf label chain for id.
func (r *Registry) ZonePath(id string) ([]Label, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, unknownZone(id)
	}
	var path []Label
	for cur := d; ; cur = r.byID[cur.ParentID] {
		path = append([]Label{cur.Label}, path...)
		if cur.ParentID == "" {
			break
		}
	}
	return path, nil
}

// ZonesByCategory returns all zones in the category, in declared order.
func (r *Registry) ZonesByCategory(cat Category) []*Definition {
	var out []*Definition
	for _, id := range r.order {
		if d := r.byID[id]; d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Zones returns every definition in declared order.
func (r *Registry) Zones() []*Definition {
	out := make([]*Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// TerminalZones returns every directly selectable zone, in declared order.
func (r *Registry) TerminalZones() []*Definition {
	var out []*Definition
	for _, id := range r.order {
		if d := r.byID[id]; d.Terminal {
			out = append(out, d)
		}
	}
	return out
}

func unknownZone(id string) error {
	return clinicalerr.New(clinicalerr.CodeUnknownZone, "",
		fmt.Sprintf("body zone %q is not defined in the registry", id),
		fmt.Sprintf("منطقة الجسم %q غير معرفة في السجل", id))
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
