package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/livery-popup-control/internal/game"
	"github.com/atomicstack/livery-popup-control/internal/livery"
	"github.com/atomicstack/livery-popup-control/internal/logging/events"
	"github.com/atomicstack/livery-popup-control/internal/ui/command"
	uistate "github.com/atomicstack/livery-popup-control/internal/ui/state"
)

// initController builds the livery controller once the first world
// snapshot has been applied to the stores.
func (m *Model) initController() {
	local := m.stores.CompanyStore().Local()
	company := m.companyOverride
	if company == game.InvalidCompany {
		company = local
	}
	m.controller = livery.NewController(m.stores, company, local)
	m.controller.SetOrphanHook(func(g game.Group) {
		events.Livery.OrphanDropped(int(g.ID), m.stores.GroupName(g))
	})
	if m.openGroup != game.InvalidGroup {
		if !m.controller.OpenAtGroup(m.openGroup) {
			m.errMsg = "Unknown group " + strconv.Itoa(int(m.openGroup))
		}
		m.openGroup = game.InvalidGroup
	}
	m.refreshRows()
}

// refreshRows regenerates the matrix items from the controller. Item IDs
// are scheme indices for scheme classes and group ids for group classes,
// so the cursor follows its row across rebuilds.
func (m *Model) refreshRows() {
	if m.controller == nil {
		return
	}
	var items []uistate.Item
	if m.controller.Class().IsGroup() {
		rows := m.controller.Rows()
		items = make([]uistate.Item, 0, len(rows))
		for _, row := range rows {
			items = append(items, uistate.Item{
				ID:    strconv.Itoa(int(row.Group.ID)),
				Label: strings.Repeat("  ", row.Indent) + m.stores.GroupName(row.Group),
			})
		}
		events.Livery.Rebuild(m.controller.Class().String(), len(rows))
	} else {
		schemes := m.controller.ActiveSchemeRows()
		items = make([]uistate.Item, 0, len(schemes))
		for _, s := range schemes {
			items = append(items, uistate.Item{
				ID:    strconv.Itoa(int(s)),
				Label: s.String(),
			})
		}
	}
	m.rows.UpdateItems(items)
	m.syncViewport()
}

// controllerRowIndex maps a list item back to the controller's row index
// for the active class. Filtering reorders the visible list, so the
// stable ID is resolved rather than the cursor position.
func (m *Model) controllerRowIndex(item uistate.Item) int {
	n, err := strconv.Atoi(item.ID)
	if err != nil {
		return -1
	}
	if m.controller.Class().IsGroup() {
		for i, row := range m.controller.Rows() {
			if int(row.Group.ID) == n {
				return i
			}
		}
		return -1
	}
	for i, s := range m.controller.ActiveSchemeRows() {
		if int(s) == n {
			return i
		}
	}
	return -1
}

func (m *Model) clickCurrentRow(ctrl bool) {
	if m.controller == nil {
		return
	}
	item, ok := m.rows.Current()
	if !ok {
		return
	}
	idx := m.controllerRowIndex(item)
	if idx < 0 {
		return
	}
	m.controller.ClickRow(idx, ctrl)
	events.Livery.RowClick(idx, ctrl, m.controller.Selection().String())
}

func (m *Model) switchClass(class livery.Class) {
	if m.controller == nil {
		return
	}
	m.closeDropdown(false)
	m.controller.SwitchClass(class)
	events.Livery.ClassSwitch(class.String())
	m.rows.SetFilter("", 0)
	m.refreshRows()
	m.rows.MoveCursorHome()
	m.syncViewport()
}

func (m *Model) cycleClass(delta int) {
	if m.controller == nil {
		return
	}
	class := int(m.controller.Class()) + delta
	if class < 0 {
		class = livery.NumClasses - 1
	}
	if class >= livery.NumClasses {
		class = 0
	}
	m.switchClass(livery.Class(class))
}

// openDropdown builds and shows the colour dropdown for one slot.
func (m *Model) openDropdown(slot game.Slot) {
	if m.controller == nil || m.controller.DropdownDisabled() {
		return
	}
	if slot == game.SlotSecondary && !m.stores.TwoColourSchemes() {
		return
	}
	options, preselect := m.controller.BuildColourList(slot)
	if len(options) == 0 {
		return
	}
	items := make([]uistate.Item, 0, len(options))
	for i, opt := range options {
		items = append(items, uistate.Item{ID: strconv.Itoa(i), Label: opt.Label})
	}
	list := uistate.NewList("dropdown", items)
	list.Cursor = preselect
	m.dropdown = list
	m.dropdownSlot = slot
	m.dropdownOptions = options
	m.syncViewport()
	events.Livery.DropdownOpen(slot.String(), len(options))
}

func (m *Model) closeDropdown(traced bool) {
	if m.dropdown == nil {
		return
	}
	if traced {
		events.Livery.DropdownCancel(m.dropdownSlot.String())
	}
	m.dropdown = nil
	m.dropdownOptions = nil
}

// commitDropdown turns the highlighted colour into command requests and
// dispatches them. With ctrl the choice applies to every scheme of the
// active class.
func (m *Model) commitDropdown(ctrl bool) tea.Cmd {
	if m.dropdown == nil || m.controller == nil {
		return nil
	}
	item, ok := m.dropdown.Current()
	if !ok {
		return nil
	}
	idx, err := strconv.Atoi(item.ID)
	if err != nil || idx < 0 || idx >= len(m.dropdownOptions) {
		return nil
	}
	opt := m.dropdownOptions[idx]
	if opt.Masked {
		m.setInfo(opt.Label + " is in use by another company")
		return nil
	}
	slot := m.dropdownSlot
	m.closeDropdown(false)
	cmds := m.controller.CommitColour(slot, opt.Value, ctrl)
	if len(cmds) == 0 {
		return nil
	}
	return m.bus.Execute(command.Request{
		Label:    "Set " + slot.String() + " colour to " + opt.Label,
		Commands: cmds,
	})
}
