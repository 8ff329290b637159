package dispatcher

import (
	"github.com/atomicstack/livery-popup-control/internal/backend"
	"github.com/atomicstack/livery-popup-control/internal/game"
	"github.com/atomicstack/livery-popup-control/internal/livery"
	"github.com/atomicstack/livery-popup-control/internal/state"
)

// Result reports which parts of the stored state a world snapshot changed,
// so the UI can invalidate only the affected surfaces.
type Result struct {
	CompaniesUpdated bool
	GroupsChanged    []game.VehicleType
	FeaturesUpdated  bool
}

// Changed reports whether anything was updated.
func (r Result) Changed() bool {
	return r.CompaniesUpdated || r.FeaturesUpdated || len(r.GroupsChanged) > 0
}

type Dispatcher struct {
	stores *state.Stores
}

func New(stores *state.Stores) *Dispatcher {
	return &Dispatcher{stores: stores}
}

// Handle applies a backend event to the stores and returns the diff.
// Errored events leave the stores untouched; the stale snapshot remains
// usable until a good reload arrives.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindWorld:
		world, ok := evt.Data.(game.World)
		if !ok {
			return res
		}

		companies := d.stores.CompanyStore()
		groups := d.stores.GroupStore()
		features := d.stores.FeatureStore()

		res.CompaniesUpdated = !companiesEqual(companies.Entries(), world.Companies) ||
			companies.Local() != world.LocalCompany
		res.GroupsChanged = changedVehicleTypes(groups.Entries(), world.Groups)

		used := livery.SchemeSet(world.UsedLiveries)
		res.FeaturesUpdated = features.UsedLiveries() != used ||
			features.TwoColourSchemes() != world.TwoColourSchemes

		companies.SetEntries(world.Companies)
		companies.SetLocal(world.LocalCompany)
		groups.SetEntries(world.Groups)
		features.SetUsedLiveries(used)
		features.SetTwoColourSchemes(world.TwoColourSchemes)
	}
	return res
}

func companiesEqual(a, b []game.Company) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Name != b[i].Name || a[i].Colour != b[i].Colour {
			return false
		}
		if !liveriesEqual(a[i].Liveries, b[i].Liveries) {
			return false
		}
	}
	return true
}

func liveriesEqual(a, b []game.Livery) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// changedVehicleTypes compares the group populations mode by mode, so a
// renamed ship group does not force a rail list rebuild.
func changedVehicleTypes(old, updated []game.Group) []game.VehicleType {
	var buckets [game.NumVehicleTypes][2][]game.Group
	for _, g := range old {
		if g.VehicleType.IsValid() {
			buckets[g.VehicleType][0] = append(buckets[g.VehicleType][0], g)
		}
	}
	for _, g := range updated {
		if g.VehicleType.IsValid() {
			buckets[g.VehicleType][1] = append(buckets[g.VehicleType][1], g)
		}
	}

	var changed []game.VehicleType
	for v := game.VehicleRail; v < game.NumVehicleTypes; v++ {
		if !groupsEqual(buckets[v][0], buckets[v][1]) {
			changed = append(changed, v)
		}
	}
	return changed
}

func groupsEqual(a, b []game.Group) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
