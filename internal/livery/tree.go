package livery

import (
	"sort"

	"github.com/atomicstack/livery-popup-control/internal/game"
)

// Row is one entry of the flattened group display list: a group reference
// plus the forest depth used for display indentation. Rows are only valid
// until the next rebuild.
type Row struct {
	Group  game.Group
	Indent int
}

// A NameResolver supplies the display name for a group. Name formatting is
// owned by the data provider, not by this package.
type NameResolver func(game.Group) string

// An OrphanFunc observes groups that were filtered in but never emitted
// because their parent chain does not reach a root within the filtered
// set. Dropping them silently is deliberate; the hook exists for
// diagnostics only.
type OrphanFunc func(game.Group)

// Flatten builds the ordered, indented display list for one company and
// vehicle type. The result is a preorder traversal of the forest induced
// by parent links: roots first, each followed by its descendants, siblings
// ordered by natural name comparison with ascending id as the tie-break.
//
// A group whose parent is neither the root sentinel nor present in the
// filtered set is not emitted. Repeated calls over unchanged records
// reproduce the identical list.
//
// The per-parent scan is quadratic in the worst case; group counts per
// company and vehicle type are small enough that the simpler shape wins.
func Flatten(source []game.Group, owner game.CompanyID, vtype game.VehicleType, nameOf NameResolver, onOrphan OrphanFunc) []Row {
	type staged struct {
		group game.Group
		name  string
	}

	var staging []staged
	for _, g := range source {
		if g.Owner != owner || g.VehicleType != vtype {
			continue
		}
		staging = append(staging, staged{group: g, name: nameOf(g)})
	}
	if len(staging) == 0 {
		return nil
	}

	sort.Slice(staging, func(i, j int) bool {
		if c := NaturalCompare(staging[i].name, staging[j].name); c != 0 {
			return c < 0
		}
		return staging[i].group.ID < staging[j].group.ID
	})

	childrenOf := make(map[game.GroupID][]int, len(staging))
	for i, s := range staging {
		childrenOf[s.group.Parent] = append(childrenOf[s.group.Parent], i)
	}

	// Explicit stack instead of recursion: depth is bounded by the data,
	// and a corrupted parent chain must not blow the call stack.
	type frame struct {
		index  int
		indent int
	}
	var stack []frame
	push := func(parent game.GroupID, indent int) {
		children := childrenOf[parent]
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{index: children[i], indent: indent})
		}
	}

	rows := make([]Row, 0, len(staging))
	emitted := make([]bool, len(staging))
	push(game.RootGroup, 0)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if emitted[top.index] {
			continue
		}
		emitted[top.index] = true
		s := staging[top.index]
		rows = append(rows, Row{Group: s.group, Indent: top.indent})
		push(s.group.ID, top.indent+1)
	}

	if onOrphan != nil {
		for i, s := range staging {
			if !emitted[i] {
				onOrphan(s.group)
			}
		}
	}

	return rows
}
