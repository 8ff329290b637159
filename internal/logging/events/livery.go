package events

import "github.com/atomicstack/livery-popup-control/internal/logging"

type LiveryTracer struct{}

var Livery = LiveryTracer{}

func (LiveryTracer) ClassSwitch(class string) {
	logging.Trace("livery.class.switch", map[string]interface{}{"class": class})
}

func (LiveryTracer) RowClick(row int, ctrl bool, selection string) {
	logging.Trace("livery.row.click", map[string]interface{}{
		"row":       row,
		"ctrl":      ctrl,
		"selection": selection,
	})
}

func (LiveryTracer) Rebuild(class string, rows int) {
	logging.Trace("livery.rebuild", map[string]interface{}{"class": class, "rows": rows})
}

func (LiveryTracer) OrphanDropped(group int, name string) {
	logging.Trace("livery.orphan.drop", map[string]interface{}{"group": group, "name": name})
}

func (LiveryTracer) DropdownOpen(slot string, entries int) {
	logging.Trace("livery.dropdown.open", map[string]interface{}{"slot": slot, "entries": entries})
}

func (LiveryTracer) DropdownCancel(slot string) {
	logging.Trace("livery.dropdown.cancel", map[string]interface{}{"slot": slot})
}
