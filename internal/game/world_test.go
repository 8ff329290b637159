package game

import (
	"strings"
	"testing"
)

func TestDecodeWorld(t *testing.T) {
	data := []byte(`{
		"companies": [
			{"id": 1, "name": "Blue Transport", "colour": 8,
			 "liveries": [{"primary": 8, "secondary": 2, "in_use": 3}]}
		],
		"groups": [
			{"id": 5, "parent": 65535, "owner": 1, "vehicle_type": 0, "name": "Mainline"}
		],
		"used_liveries": 7,
		"two_colour_schemes": true
	}`)
	w, err := DecodeWorld(data)
	if err != nil {
		t.Fatalf("DecodeWorld: %v", err)
	}
	c, ok := w.Company(1)
	if !ok || c.Name != "Blue Transport" || c.Colour != 8 {
		t.Fatalf("company: %+v ok=%v", c, ok)
	}
	l := c.SchemeLivery(0)
	if l.Primary != 8 || l.Secondary != 2 || !l.PrimaryInUse() || !l.SecondaryInUse() {
		t.Fatalf("livery: %+v", l)
	}
	g, ok := w.Group(5)
	if !ok || g.Parent != RootGroup || g.Name != "Mainline" {
		t.Fatalf("group: %+v ok=%v", g, ok)
	}
	if w.UsedLiveries != 7 || !w.TwoColourSchemes {
		t.Fatalf("features: %+v", w)
	}
}

func TestDecodeWorldRejectsDuplicateGroupIDs(t *testing.T) {
	data := []byte(`{"groups": [
		{"id": 5, "parent": 65535, "owner": 1, "vehicle_type": 0},
		{"id": 5, "parent": 65535, "owner": 1, "vehicle_type": 0}
	]}`)
	if _, err := DecodeWorld(data); err == nil {
		t.Fatal("expected duplicate group id error")
	}
}

func TestDecodeWorldRejectsInvalidGroups(t *testing.T) {
	data := []byte(`{"groups": [
		{"id": 5, "parent": 65535, "owner": 1, "vehicle_type": 9}
	]}`)
	if _, err := DecodeWorld(data); err == nil {
		t.Fatal("expected vehicle type validation error")
	}
}

func TestDecodeWorldRejectsGarbage(t *testing.T) {
	if _, err := DecodeWorld([]byte("{")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGroupName(t *testing.T) {
	w := World{}
	named := Group{ID: 3, VehicleType: VehicleShip, Name: "Ferries"}
	if got := w.GroupName(named); got != "Ferries" {
		t.Fatalf("named: got %q", got)
	}
	anon := Group{ID: 3, VehicleType: VehicleShip}
	if got := w.GroupName(anon); !strings.Contains(got, "Group 3") {
		t.Fatalf("anonymous: got %q", got)
	}
}

func TestGroupsForFiltersAndSorts(t *testing.T) {
	w := World{Groups: []Group{
		{ID: 9, Owner: 1, VehicleType: VehicleRail},
		{ID: 2, Owner: 1, VehicleType: VehicleRail},
		{ID: 3, Owner: 2, VehicleType: VehicleRail},
		{ID: 4, Owner: 1, VehicleType: VehicleRoad},
	}}
	got := w.GroupsFor(1, VehicleRail)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 9 {
		t.Fatalf("GroupsFor: %+v", got)
	}
}

func TestIsValidGroup(t *testing.T) {
	w := World{Groups: []Group{{ID: 7, Parent: RootGroup, Owner: 1}}}
	if !w.IsValidGroup(7) {
		t.Fatal("expected group 7 valid")
	}
	if w.IsValidGroup(8) || w.IsValidGroup(InvalidGroup) {
		t.Fatal("expected unknown ids invalid")
	}
}
