package livery

import (
	"fmt"

	"github.com/atomicstack/livery-popup-control/internal/game"
)

type selectionKind int

const (
	selectSchemes selectionKind = iota
	selectGroup
)

// Selection is the tagged selection variant: a scheme bitmask while a
// scheme class is active, or a single group id (possibly the invalid
// sentinel) while a group class is active. Multi-select exists only for
// schemes; groups are single-select, and the split is a type-level fact
// rather than a convention over one integer.
type Selection struct {
	kind    selectionKind
	schemes SchemeSet
	group   game.GroupID
}

// SchemeSelection builds a scheme-bitmask selection.
func SchemeSelection(set SchemeSet) Selection {
	return Selection{kind: selectSchemes, schemes: set}
}

// GroupSelection builds a single-group selection.
func GroupSelection(id game.GroupID) Selection {
	return Selection{kind: selectGroup, group: id}
}

// NoGroupSelection is the group-class NONE selection.
func NoGroupSelection() Selection {
	return GroupSelection(game.InvalidGroup)
}

// Schemes returns the scheme bitmask when this is a scheme selection.
func (s Selection) Schemes() (SchemeSet, bool) {
	if s.kind != selectSchemes {
		return 0, false
	}
	return s.schemes, true
}

// Group returns the selected group id when this is a group selection.
func (s Selection) Group() (game.GroupID, bool) {
	if s.kind != selectGroup {
		return game.InvalidGroup, false
	}
	return s.group, true
}

// IsEmpty reports whether nothing is effectively selected: an empty
// scheme set, or the invalid group sentinel.
func (s Selection) IsEmpty() bool {
	if s.kind == selectSchemes {
		return s.schemes.IsEmpty()
	}
	return s.group == game.InvalidGroup
}

func (s Selection) String() string {
	if s.kind == selectSchemes {
		return fmt.Sprintf("schemes(%#x)", uint32(s.schemes))
	}
	if s.group == game.InvalidGroup {
		return "group(none)"
	}
	return fmt.Sprintf("group(%d)", s.group)
}
