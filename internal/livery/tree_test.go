package livery

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/atomicstack/livery-popup-control/internal/game"
)

const testOwner game.CompanyID = 1

func testName(g game.Group) string {
	if g.Name != "" {
		return g.Name
	}
	return fmt.Sprintf("Group %d", g.ID)
}

func railGroup(id, parent game.GroupID, name string) game.Group {
	return game.Group{ID: id, Parent: parent, Owner: testOwner, VehicleType: game.VehicleRail, Name: name}
}

func flattenRail(t *testing.T, groups []game.Group) []Row {
	t.Helper()
	return Flatten(groups, testOwner, game.VehicleRail, testName, nil)
}

func rowIDs(rows []Row) []game.GroupID {
	ids := make([]game.GroupID, len(rows))
	for i, r := range rows {
		ids[i] = r.Group.ID
	}
	return ids
}

func TestFlattenEmpty(t *testing.T) {
	if rows := flattenRail(t, nil); rows != nil {
		t.Fatalf("expected nil rows for empty source, got %v", rows)
	}
}

func TestFlattenChildFollowsParent(t *testing.T) {
	groups := []game.Group{
		railGroup(1, game.RootGroup, "Zeta"),
		railGroup(2, game.RootGroup, "Alpha"),
		railGroup(3, 2, "Mid"),
	}
	rows := flattenRail(t, groups)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// Alpha sorts first, its child is emitted before the Zeta root.
	want := []game.GroupID{2, 3, 1}
	for i, id := range want {
		if rows[i].Group.ID != id {
			t.Fatalf("row order %v, want %v", rowIDs(rows), want)
		}
	}
	wantIndent := []int{0, 1, 0}
	for i, ind := range wantIndent {
		if rows[i].Indent != ind {
			t.Fatalf("indent[%d] = %d, want %d", i, rows[i].Indent, ind)
		}
	}
}

func TestFlattenNaturalSiblingOrder(t *testing.T) {
	groups := []game.Group{
		railGroup(1, game.RootGroup, "G9"),
		railGroup(2, game.RootGroup, "G10"),
	}
	rows := flattenRail(t, groups)
	if rows[0].Group.ID != 1 || rows[1].Group.ID != 2 {
		t.Fatalf("expected natural order [G9 G10], got %v", rowIDs(rows))
	}
}

func TestFlattenEqualNamesOrderedByID(t *testing.T) {
	groups := []game.Group{
		railGroup(7, game.RootGroup, "Depot"),
		railGroup(3, game.RootGroup, "Depot"),
		railGroup(5, game.RootGroup, "Depot"),
	}
	rows := flattenRail(t, groups)
	want := []game.GroupID{3, 5, 7}
	for i, id := range want {
		if rows[i].Group.ID != id {
			t.Fatalf("equal-name order %v, want %v", rowIDs(rows), want)
		}
	}
}

func TestFlattenFiltersOwnerAndVehicleType(t *testing.T) {
	groups := []game.Group{
		railGroup(1, game.RootGroup, "Mine"),
		{ID: 2, Parent: game.RootGroup, Owner: 9, VehicleType: game.VehicleRail, Name: "Other company"},
		{ID: 3, Parent: game.RootGroup, Owner: testOwner, VehicleType: game.VehicleShip, Name: "Ships"},
	}
	rows := flattenRail(t, groups)
	if len(rows) != 1 || rows[0].Group.ID != 1 {
		t.Fatalf("expected only the matching group, got %v", rowIDs(rows))
	}
}

func TestFlattenDropsOrphansSilently(t *testing.T) {
	groups := []game.Group{
		railGroup(1, game.RootGroup, "Root"),
		railGroup(2, 99, "Orphan"), // parent deleted
		railGroup(3, 2, "Orphan child"),
	}
	var dropped []game.GroupID
	rows := Flatten(groups, testOwner, game.VehicleRail, testName, func(g game.Group) {
		dropped = append(dropped, g.ID)
	})
	if len(rows) != 1 || rows[0].Group.ID != 1 {
		t.Fatalf("expected orphan subtree dropped, got %v", rowIDs(rows))
	}
	if len(dropped) != 2 {
		t.Fatalf("expected 2 dropped groups reported, got %v", dropped)
	}
}

func TestFlattenCycleDoesNotHang(t *testing.T) {
	groups := []game.Group{
		railGroup(1, 2, "A"),
		railGroup(2, 1, "B"),
		railGroup(3, game.RootGroup, "Root"),
	}
	var dropped int
	rows := Flatten(groups, testOwner, game.VehicleRail, testName, func(game.Group) { dropped++ })
	if len(rows) != 1 || rows[0].Group.ID != 3 {
		t.Fatalf("expected cycle members excluded, got %v", rowIDs(rows))
	}
	if dropped != 2 {
		t.Fatalf("expected cycle members reported to the hook, got %d", dropped)
	}
}

func TestFlattenDeepChainNoRecursionLimit(t *testing.T) {
	const depth = 50000
	groups := make([]game.Group, depth)
	parent := game.RootGroup
	for i := 0; i < depth; i++ {
		id := game.GroupID(i + 1)
		groups[i] = railGroup(id, parent, fmt.Sprintf("Level %05d", i))
		parent = id
	}
	rows := flattenRail(t, groups)
	if len(rows) != depth {
		t.Fatalf("expected %d rows, got %d", depth, len(rows))
	}
	if rows[depth-1].Indent != depth-1 {
		t.Fatalf("expected indent %d at the bottom, got %d", depth-1, rows[depth-1].Indent)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	groups := []game.Group{
		railGroup(1, game.RootGroup, "B"),
		railGroup(2, game.RootGroup, "A"),
		railGroup(3, 2, "C"),
		railGroup(4, 2, "C"),
	}
	first := flattenRail(t, groups)
	second := flattenRail(t, groups)
	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs between identical builds: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// generateForest draws a random forest of rail groups with occasional
// orphaned parents mixed in.
func generateForest(t *rapid.T) []game.Group {
	n := rapid.IntRange(0, 24).Draw(t, "n")
	groups := make([]game.Group, 0, n)
	for i := 0; i < n; i++ {
		id := game.GroupID(i + 1)
		parent := game.RootGroup
		switch rapid.IntRange(0, 3).Draw(t, "shape") {
		case 0: // root
		case 1, 2: // child of an earlier group
			if i > 0 {
				parent = game.GroupID(rapid.IntRange(1, i).Draw(t, "parent"))
			}
		case 3: // orphan: parent outside the set
			parent = game.GroupID(1000 + i)
		}
		name := rapid.StringMatching(`[A-Z][a-z]{0,4}( [0-9]{1,3})?`).Draw(t, "name")
		groups = append(groups, railGroup(id, parent, name))
	}
	return groups
}

func TestFlattenPropertiesRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		groups := generateForest(t)

		byID := make(map[game.GroupID]game.Group, len(groups))
		for _, g := range groups {
			byID[g.ID] = g
		}

		orphans := 0
		rows := Flatten(groups, testOwner, game.VehicleRail, testName, func(game.Group) { orphans++ })

		// Count identity: every filtered record is either emitted or
		// reported as dropped.
		if len(rows)+orphans != len(groups) {
			t.Fatalf("emitted %d + dropped %d != filtered %d", len(rows), orphans, len(groups))
		}

		// Preorder: a parent in the filtered set precedes its children,
		// at one less indent.
		pos := make(map[game.GroupID]int, len(rows))
		for i, r := range rows {
			pos[r.Group.ID] = i
		}
		for i, r := range rows {
			if r.Group.Parent == game.RootGroup {
				if r.Indent != 0 {
					t.Fatalf("root %d at indent %d", r.Group.ID, r.Indent)
				}
				continue
			}
			pi, ok := pos[r.Group.Parent]
			if !ok {
				t.Fatalf("row %d emitted but parent %d was not", r.Group.ID, r.Group.Parent)
			}
			if pi >= i {
				t.Fatalf("parent %d emitted after child %d", r.Group.Parent, r.Group.ID)
			}
			if r.Indent != rows[pi].Indent+1 {
				t.Fatalf("child %d indent %d under parent indent %d", r.Group.ID, r.Indent, rows[pi].Indent)
			}
		}

		// Sibling order: non-decreasing natural name order, ids ascending
		// on ties.
		siblings := make(map[game.GroupID][]Row)
		for _, r := range rows {
			siblings[r.Group.Parent] = append(siblings[r.Group.Parent], r)
		}
		for parent, list := range siblings {
			for i := 0; i+1 < len(list); i++ {
				a, b := list[i], list[i+1]
				c := NaturalCompare(testName(a.Group), testName(b.Group))
				if c > 0 {
					t.Fatalf("siblings of %d out of order: %q after %q", parent, testName(b.Group), testName(a.Group))
				}
				if c == 0 && a.Group.ID > b.Group.ID {
					t.Fatalf("equal-name siblings of %d not id-ordered", parent)
				}
			}
		}

		// Idempotence.
		again := Flatten(groups, testOwner, game.VehicleRail, testName, nil)
		if len(again) != len(rows) {
			t.Fatalf("rebuild changed row count: %d vs %d", len(again), len(rows))
		}
		for i := range rows {
			if rows[i] != again[i] {
				t.Fatalf("rebuild changed row %d", i)
			}
		}
	})
}
