package state

import (
	"github.com/atomicstack/livery-popup-control/internal/game"
	"github.com/atomicstack/livery-popup-control/internal/livery"
)

// Stores bundles the per-concern stores and exposes them as the read-only
// view the livery controller consumes.
type Stores struct {
	companies CompanyStore
	groups    GroupStore
	features  FeatureStore
}

func NewStores() *Stores {
	return &Stores{
		companies: NewCompanyStore(),
		groups:    NewGroupStore(),
		features:  NewFeatureStore(),
	}
}

func (s *Stores) CompanyStore() CompanyStore { return s.companies }
func (s *Stores) GroupStore() GroupStore     { return s.groups }
func (s *Stores) FeatureStore() FeatureStore { return s.features }

func (s *Stores) Company(id game.CompanyID) (game.Company, bool) {
	return s.companies.Company(id)
}

func (s *Stores) Companies() []game.Company {
	return s.companies.Entries()
}

func (s *Stores) Groups() []game.Group {
	return s.groups.Entries()
}

func (s *Stores) GroupName(g game.Group) string {
	return game.GroupDisplayName(g)
}

func (s *Stores) UsedLiveries() livery.SchemeSet {
	return s.features.UsedLiveries()
}

func (s *Stores) TwoColourSchemes() bool {
	return s.features.TwoColourSchemes()
}
