package livery

import "github.com/atomicstack/livery-popup-control/internal/game"

// Provider is the read-only view of the externally owned world state the
// controller works against. Stores implement it; tests supply fixtures.
type Provider interface {
	Company(game.CompanyID) (game.Company, bool)
	Companies() []game.Company
	Groups() []game.Group
	GroupName(game.Group) string
	UsedLiveries() SchemeSet
	TwoColourSchemes() bool
}

// Controller owns the livery selection state machine for one company: the
// active class, the current selection, and the flattened group rows. It
// never mutates world state; colour commits are returned as command
// requests for the caller to dispatch.
type Controller struct {
	provider Provider
	company  game.CompanyID
	local    game.CompanyID

	class Class
	sel   Selection

	rows  []Row
	dirty bool

	onOrphan OrphanFunc
}

// NewController creates a controller for editing the given company,
// starting on the general scheme class. The local company gates commits:
// requests for other companies are discarded.
func NewController(p Provider, company, local game.CompanyID) *Controller {
	c := &Controller{
		provider: p,
		company:  company,
		local:    local,
		class:    ClassOther,
		dirty:    true,
	}
	c.sel = c.initialSchemeSelection(ClassOther)
	return c
}

// SetOrphanHook installs the observer for silently dropped group rows.
func (c *Controller) SetOrphanHook(fn OrphanFunc) {
	c.onOrphan = fn
}

// Company returns the company being edited.
func (c *Controller) Company() game.CompanyID {
	return c.company
}

// Class returns the active class.
func (c *Controller) Class() Class {
	return c.class
}

// Selection returns the current selection.
func (c *Controller) Selection() Selection {
	return c.sel
}

// IsLocal reports whether the edited company is the local company, the
// only one whose liveries may be changed from this window.
func (c *Controller) IsLocal() bool {
	return c.company == c.local
}

// initialSchemeSelection selects the first feature-gated scheme of a
// scheme class, or nothing when the class has no active schemes.
func (c *Controller) initialSchemeSelection(class Class) Selection {
	active := ActiveSchemes(class, c.provider.UsedLiveries())
	if len(active) == 0 {
		return SchemeSelection(0)
	}
	return SchemeSelection(SetOf(active[0]))
}

// SwitchClass activates a class and resets the selection to its first
// row: the first active scheme for scheme classes, the first flattened
// group (or NONE) for group classes.
func (c *Controller) SwitchClass(class Class) {
	if class < 0 || int(class) >= NumClasses {
		return
	}
	c.class = class
	if !class.IsGroup() {
		c.sel = c.initialSchemeSelection(class)
		return
	}
	// Rebuild revalidates the NONE selection into the first row when the
	// list is non-empty.
	c.sel = NoGroupSelection()
	c.dirty = true
	c.Rebuild()
}

// OpenAtGroup jumps straight to the group class containing the given
// group and selects it, as when the window is opened from a group view.
// Unknown ids leave the controller on its current class.
func (c *Controller) OpenAtGroup(id game.GroupID) bool {
	var target *game.Group
	for _, g := range c.provider.Groups() {
		if g.ID == id && g.Owner == c.company {
			target = &g
			break
		}
	}
	if target == nil {
		return false
	}
	c.class = GroupClassFor(target.VehicleType)
	c.dirty = true
	c.Rebuild()
	c.sel = GroupSelection(id)
	c.revalidateGroupSelection()
	return true
}

// Rebuild reconstructs the flattened group rows when the dirty flag is
// set. Clean rebuilds cost nothing; the display list is replaced
// wholesale, never patched.
func (c *Controller) Rebuild() {
	if !c.dirty {
		return
	}
	c.dirty = false
	if !c.class.IsGroup() {
		c.rows = nil
		return
	}
	c.rows = Flatten(
		c.provider.Groups(),
		c.company,
		c.class.VehicleType(),
		c.provider.GroupName,
		c.onOrphan,
	)
	c.revalidateGroupSelection()
}

// revalidateGroupSelection drops a selection whose group no longer
// appears in the rows, falling back to the first row or NONE. Selections
// never dangle across a rebuild.
func (c *Controller) revalidateGroupSelection() {
	id, ok := c.sel.Group()
	if !ok {
		return
	}
	if id != game.InvalidGroup {
		for _, row := range c.rows {
			if row.Group.ID == id {
				return
			}
		}
	}
	if len(c.rows) > 0 {
		c.sel = GroupSelection(c.rows[0].Group.ID)
		return
	}
	c.sel = NoGroupSelection()
}

// Rows returns the flattened group rows, rebuilding first if needed.
// The slice is only valid until the next rebuild.
func (c *Controller) Rows() []Row {
	c.Rebuild()
	return c.rows
}

// ActiveSchemeRows returns, in display order, the feature-gated schemes
// of the active scheme class. Empty for group classes.
func (c *Controller) ActiveSchemeRows() []Scheme {
	return ActiveSchemes(c.class, c.provider.UsedLiveries())
}

// RowCount returns the number of selectable rows for the active class.
func (c *Controller) RowCount() int {
	if c.class.IsGroup() {
		return len(c.Rows())
	}
	return len(c.ActiveSchemeRows())
}

// ClickRow applies a row activation. For scheme classes the row index is
// mapped back to a scheme by walking scheme order and counting only
// active schemes, the identical walk that generated the rows, then
// either toggles that scheme's bit (ctrl) or replaces the bitmask.
// Group classes are single-select; ctrl has no extra meaning there.
// Row indices beyond the populated list are ignored.
func (c *Controller) ClickRow(row int, ctrl bool) {
	if row < 0 {
		return
	}
	if c.class.IsGroup() {
		rows := c.Rows()
		if row >= len(rows) {
			return
		}
		c.sel = GroupSelection(rows[row].Group.ID)
		return
	}
	active := c.ActiveSchemeRows()
	if row >= len(active) {
		return
	}
	scheme := active[row]
	set, ok := c.sel.Schemes()
	if !ok {
		set = 0
	}
	if ctrl {
		c.sel = SchemeSelection(set.Toggle(scheme))
		return
	}
	c.sel = SchemeSelection(SetOf(scheme))
}

// Invalidate reacts to an external change notification. A specific
// notification names the vehicle type whose groups changed and forces a
// rebuild when that type's group class is active; a non-specific one
// (company or feature data changed) only invalidates scheme rows, which
// are derived directly from the provider on read.
func (c *Controller) Invalidate(vtype game.VehicleType, specific bool) {
	if !specific {
		return
	}
	if c.class != GroupClassFor(vtype) {
		return
	}
	c.dirty = true
	c.Rebuild()
}

// DropdownDisabled reports whether colour dropdowns should be disabled:
// nothing selected, or the window is not editing the local company.
func (c *Controller) DropdownDisabled() bool {
	return !c.IsLocal() || c.sel.IsEmpty()
}

// CommitColour turns a dropdown choice into command requests. Colour may
// be the invalid sentinel, meaning "inherit". For scheme classes every
// selected scheme receives the colour; with ctrl, every active scheme of
// the class does, selected or not. For group classes the single selected
// group receives it. Requests are fire-and-forget; the controller's own
// state is untouched and the effect surfaces later via invalidation.
func (c *Controller) CommitColour(slot game.Slot, colour game.Colour, ctrl bool) []game.Command {
	if !c.IsLocal() {
		return nil
	}
	if set, ok := c.sel.Schemes(); ok {
		active := SchemeSet(0)
		for _, s := range c.ActiveSchemeRows() {
			active = active.With(s)
		}
		var cmds []game.Command
		for s := SchemeDefault; s < NumSchemes; s++ {
			if set.Has(s) || (ctrl && active.Has(s)) {
				cmds = append(cmds, game.SetCompanyLivery(c.company, int(s), slot, colour))
			}
		}
		return cmds
	}
	id, _ := c.sel.Group()
	if id == game.InvalidGroup {
		return nil
	}
	return []game.Command{game.SetGroupLivery(c.company, id, slot, colour)}
}
