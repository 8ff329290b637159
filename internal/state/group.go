package state

import "github.com/atomicstack/livery-popup-control/internal/game"

type GroupStore interface {
	Entries() []game.Group
	SetEntries([]game.Group)
	Group(game.GroupID) (game.Group, bool)
}

type groupStore struct {
	entries []game.Group
}

func NewGroupStore() GroupStore {
	return &groupStore{}
}

func (s *groupStore) Entries() []game.Group {
	return cloneGroups(s.entries)
}

func (s *groupStore) SetEntries(entries []game.Group) {
	s.entries = cloneGroups(entries)
}

func (s *groupStore) Group(id game.GroupID) (game.Group, bool) {
	for _, g := range s.entries {
		if g.ID == id {
			return g, true
		}
	}
	return game.Group{}, false
}

func cloneGroups(entries []game.Group) []game.Group {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]game.Group, len(entries))
	copy(dup, entries)
	return dup
}
