package livery

import (
	"testing"

	"github.com/atomicstack/livery-popup-control/internal/game"
)

func TestEverySchemeHasAClass(t *testing.T) {
	counts := make(map[Class]int)
	for s := SchemeDefault; s < NumSchemes; s++ {
		counts[ClassOf(s)]++
	}
	want := map[Class]int{
		ClassOther:    1,
		ClassRail:     13,
		ClassRoad:     4,
		ClassShip:     2,
		ClassAircraft: 3,
	}
	for class, n := range want {
		if counts[class] != n {
			t.Errorf("%v: got %d schemes, want %d", class, counts[class], n)
		}
	}
}

func TestTramsShareTheRoadClass(t *testing.T) {
	if ClassOf(SchemePassengerTram) != ClassRoad || ClassOf(SchemeFreightTram) != ClassRoad {
		t.Fatal("tram schemes must list under the road class")
	}
}

func TestGroupClassRoundTrip(t *testing.T) {
	for v := game.VehicleRail; v < game.NumVehicleTypes; v++ {
		class := GroupClassFor(v)
		if !class.IsGroup() {
			t.Fatalf("%v: %v is not a group class", v, class)
		}
		if class.VehicleType() != v {
			t.Fatalf("%v: round trip gave %v", v, class.VehicleType())
		}
	}
}

func TestActiveSchemesHonoursFeatureGate(t *testing.T) {
	used := SetOf(SchemeDefault, SchemeSteam, SchemeEMU, SchemeBus)

	rail := ActiveSchemes(ClassRail, used)
	if len(rail) != 2 || rail[0] != SchemeSteam || rail[1] != SchemeEMU {
		t.Fatalf("rail: got %v", rail)
	}
	if got := ActiveSchemes(ClassShip, used); got != nil {
		t.Fatalf("ship: expected no active schemes, got %v", got)
	}
	if got := ActiveSchemes(ClassGroupRail, AllSchemes); got != nil {
		t.Fatalf("group class: expected nil, got %v", got)
	}
}

func TestSchemeSetOperations(t *testing.T) {
	set := SetOf(SchemeSteam, SchemeBus)
	if !set.Has(SchemeSteam) || set.Has(SchemeDiesel) {
		t.Fatalf("membership wrong for %#x", uint32(set))
	}
	if set.Toggle(SchemeSteam).Has(SchemeSteam) {
		t.Fatal("toggle did not clear the bit")
	}
	if set.Toggle(SchemeSteam).Toggle(SchemeSteam) != set {
		t.Fatal("double toggle is not identity")
	}
	if set.Count() != 2 {
		t.Fatalf("count: got %d", set.Count())
	}
	if set.Lowest() != SchemeSteam {
		t.Fatalf("lowest: got %v", set.Lowest())
	}
	if SchemeSet(0).Lowest() != SchemeDefault {
		t.Fatalf("empty lowest: got %v", SchemeSet(0).Lowest())
	}
	if AllSchemes.Count() != NumSchemes {
		t.Fatalf("full set count: got %d", AllSchemes.Count())
	}
}
