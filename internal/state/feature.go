package state

import "github.com/atomicstack/livery-popup-control/internal/livery"

type FeatureStore interface {
	UsedLiveries() livery.SchemeSet
	SetUsedLiveries(livery.SchemeSet)
	TwoColourSchemes() bool
	SetTwoColourSchemes(bool)
}

type featureStore struct {
	used  livery.SchemeSet
	twoCC bool
}

// NewFeatureStore starts with every scheme active; the first world
// snapshot narrows it down.
func NewFeatureStore() FeatureStore {
	return &featureStore{used: livery.AllSchemes}
}

func (s *featureStore) UsedLiveries() livery.SchemeSet {
	return s.used
}

func (s *featureStore) SetUsedLiveries(used livery.SchemeSet) {
	s.used = used
}

func (s *featureStore) TwoColourSchemes() bool {
	return s.twoCC
}

func (s *featureStore) SetTwoColourSchemes(enabled bool) {
	s.twoCC = enabled
}
