package livery

import (
	"testing"

	"github.com/atomicstack/livery-popup-control/internal/game"
)

func newDropdownProvider() *fakeProvider {
	p := newTestProvider()
	p.companies = append(p.companies, game.Company{
		ID: 2, Name: "Red Transport", Colour: 4, Liveries: make([]game.Livery, NumSchemes),
	})
	return p
}

func optionByValue(t *testing.T, options []ColourOption, value game.Colour) ColourOption {
	t.Helper()
	for _, opt := range options {
		if !opt.Default && opt.Value == value {
			return opt
		}
	}
	t.Fatalf("no option with value %d in %v", value, options)
	return ColourOption{}
}

func TestDropdownMasksOtherCompanyColoursForDefaultPrimary(t *testing.T) {
	p := newDropdownProvider()
	c := NewController(p, 1, 1) // default scheme selected

	options, _ := c.BuildColourList(game.SlotPrimary)
	if len(options) != game.NumColours {
		t.Fatalf("expected no default entry for the default scheme, got %d options", len(options))
	}
	if !optionByValue(t, options, 4).Masked {
		t.Fatal("expected the other company's colour to be masked")
	}
	if optionByValue(t, options, 8).Masked {
		t.Fatal("the edited company's own colour must stay selectable")
	}
}

func TestDropdownSecondarySlotNeverMasks(t *testing.T) {
	c := NewController(newDropdownProvider(), 1, 1)
	options, _ := c.BuildColourList(game.SlotSecondary)
	for _, opt := range options {
		if opt.Masked {
			t.Fatalf("secondary slot masked %q", opt.Label)
		}
	}
}

func TestDropdownNonDefaultSchemeNeverMasks(t *testing.T) {
	c := NewController(newDropdownProvider(), 1, 1)
	c.SwitchClass(ClassRail) // Steam selected

	options, _ := c.BuildColourList(game.SlotPrimary)
	for _, opt := range options {
		if opt.Masked {
			t.Fatalf("non-default scheme masked %q", opt.Label)
		}
	}
}

func TestDropdownDefaultEntryShowsInheritedColour(t *testing.T) {
	p := newDropdownProvider()
	p.companies[0].Liveries[SchemeDefault] = game.Livery{
		Primary: 8, Secondary: 11, InUse: game.LiveryPrimarySet | game.LiverySecondarySet,
	}
	c := NewController(p, 1, 1)
	c.SwitchClass(ClassRail)

	options, preselect := c.BuildColourList(game.SlotPrimary)
	if len(options) != game.NumColours+1 {
		t.Fatalf("expected a prepended default entry, got %d options", len(options))
	}
	def := options[0]
	if !def.Default || def.Value != game.InvalidColour || def.Display != 8 {
		t.Fatalf("unexpected default entry %+v", def)
	}
	// Steam has no colour of its own, so the default entry is preselected.
	if preselect != 0 {
		t.Fatalf("expected the default entry preselected, got %d", preselect)
	}
}

func TestDropdownPreselectsExplicitSchemeColour(t *testing.T) {
	p := newDropdownProvider()
	p.companies[0].Liveries[SchemeSteam] = game.Livery{
		Primary: 3, InUse: game.LiveryPrimarySet,
	}
	c := NewController(p, 1, 1)
	c.SwitchClass(ClassRail)

	options, preselect := c.BuildColourList(game.SlotPrimary)
	if options[preselect].Value != 3 || options[preselect].Default {
		t.Fatalf("expected the explicit colour preselected, got %+v", options[preselect])
	}
}

func TestDropdownDefaultSchemePreselectsOwnColour(t *testing.T) {
	p := newDropdownProvider()
	p.companies[0].Liveries[SchemeDefault] = game.Livery{
		Primary: 8, InUse: game.LiveryPrimarySet,
	}
	c := NewController(p, 1, 1)

	options, preselect := c.BuildColourList(game.SlotPrimary)
	if options[preselect].Value != 8 {
		t.Fatalf("expected colour 8 preselected, got %+v", options[preselect])
	}
}

func TestDropdownRootGroupInheritsCompanyDefault(t *testing.T) {
	p := newDropdownProvider()
	p.companies[0].Liveries[SchemeDefault] = game.Livery{
		Primary: 8, InUse: game.LiveryPrimarySet,
	}
	p.addRailGroup(1, game.RootGroup, "Mainline")
	c := NewController(p, 1, 1)
	c.SwitchClass(ClassGroupRail)

	options, preselect := c.BuildColourList(game.SlotPrimary)
	def := options[0]
	if !def.Default || def.Display != 8 {
		t.Fatalf("expected root group to inherit company default colour, got %+v", def)
	}
	if preselect != 0 {
		t.Fatalf("group without own colour should preselect the default entry, got %d", preselect)
	}
}

func TestDropdownChildGroupInheritsParentLivery(t *testing.T) {
	p := newDropdownProvider()
	p.groups = append(p.groups, game.Group{
		ID: 1, Parent: game.RootGroup, Owner: 1, VehicleType: game.VehicleRail, Name: "Mainline",
		Livery: game.Livery{Primary: 12, InUse: game.LiveryPrimarySet},
	})
	p.addRailGroup(2, 1, "Branch")
	c := NewController(p, 1, 1)
	c.SwitchClass(ClassGroupRail)
	c.ClickRow(1, false) // Branch

	options, _ := c.BuildColourList(game.SlotPrimary)
	def := options[0]
	if !def.Default || def.Display != 12 {
		t.Fatalf("expected child group to inherit parent colour, got %+v", def)
	}
}

func TestDropdownGroupWithOwnColourPreselectsIt(t *testing.T) {
	p := newDropdownProvider()
	p.groups = append(p.groups, game.Group{
		ID: 1, Parent: game.RootGroup, Owner: 1, VehicleType: game.VehicleRail, Name: "Mainline",
		Livery: game.Livery{Primary: 12, InUse: game.LiveryPrimarySet},
	})
	c := NewController(p, 1, 1)
	c.SwitchClass(ClassGroupRail)

	options, preselect := c.BuildColourList(game.SlotPrimary)
	if options[preselect].Value != 12 {
		t.Fatalf("expected the group's own colour preselected, got %+v", options[preselect])
	}
}
