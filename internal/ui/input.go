package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/livery-popup-control/internal/game"
	"github.com/atomicstack/livery-popup-control/internal/livery"
	"github.com/atomicstack/livery-popup-control/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.dropdown != nil {
		return m.handleDropdownKey(keyMsg)
	}
	return m.handleMatrixKey(keyMsg)
}

func (m *Model) handleMatrixKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return tea.Quit
	case "tab":
		m.cycleClass(1)
		return nil
	case "shift+tab":
		m.cycleClass(-1)
		return nil
	case "enter":
		m.clickCurrentRow(false)
		return nil
	case "ctrl+t", "ctrl+@":
		m.clickCurrentRow(true)
		return nil
	case "ctrl+p":
		m.openDropdown(game.SlotPrimary)
		return nil
	case "ctrl+s":
		m.openDropdown(game.SlotSecondary)
		return nil
	case "up":
		m.moveCursor((*uiList).MoveCursorUp)
		return nil
	case "down":
		m.moveCursor((*uiList).MoveCursorDown)
		return nil
	case "home":
		m.moveCursor((*uiList).MoveCursorHome)
		return nil
	case "end":
		m.moveCursor((*uiList).MoveCursorEnd)
		return nil
	case "pgup":
		m.moveCursorPage(-1)
		return nil
	case "pgdown":
		m.moveCursorPage(1)
		return nil
	}
	// Group lists are filterable, so printable keys (digits included) go
	// to the filter there; the shortcuts below only work outside them.
	if m.handleTextInput(msg) {
		return nil
	}
	switch msg.String() {
	case "left":
		m.cycleClass(-1)
		return nil
	case "right":
		m.cycleClass(1)
		return nil
	case "x":
		m.clickCurrentRow(true)
		return nil
	case "p":
		m.openDropdown(game.SlotPrimary)
		return nil
	case "s":
		m.openDropdown(game.SlotSecondary)
		return nil
	}
	if class, ok := classForDigit(msg); ok {
		m.switchClass(class)
	}
	return nil
}

func (m *Model) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.closeDropdown(true)
		return nil
	case "enter":
		return m.commitDropdown(false)
	case "ctrl+t", "ctrl+@":
		return m.commitDropdown(true)
	case "up":
		m.moveCursor((*uiList).MoveCursorUp)
	case "down":
		m.moveCursor((*uiList).MoveCursorDown)
	case "home":
		m.moveCursor((*uiList).MoveCursorHome)
	case "end":
		m.moveCursor((*uiList).MoveCursorEnd)
	case "pgup":
		m.moveCursorPage(-1)
	case "pgdown":
		m.moveCursorPage(1)
	}
	return nil
}

// classForDigit maps the digit keys onto classes: 1 is the general class,
// 2-5 the scheme classes, 6-9 the group classes.
func classForDigit(msg tea.KeyMsg) (livery.Class, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return livery.Class(r - '1'), true
}

func (m *Model) moveCursor(move func(*uiList) bool) {
	l := m.activeList()
	if l == nil {
		return
	}
	if move(l) {
		events.UI.Cursor(l.ID, l.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorPage(direction int) {
	l := m.activeList()
	if l == nil {
		return
	}
	var moved bool
	if direction < 0 {
		moved = l.MoveCursorPageUp(m.maxVisibleItems())
	} else {
		moved = l.MoveCursorPageDown(m.maxVisibleItems())
	}
	if moved {
		events.UI.Cursor(l.ID, l.Cursor)
	}
	m.syncViewport()
}

// handleTextInput feeds printable keys into the row filter. Only group
// classes are filterable; scheme lists are short and fixed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if m.controller == nil || !m.controller.Class().IsGroup() {
		return false
	}
	l := m.rows
	switch msg.String() {
	case "ctrl+u":
		if l.Filter == "" {
			return false
		}
		before := l.FilterCursorPos()
		l.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.Cleared(l.ID)
		m.syncViewport()
		return true
	case "ctrl+w":
		before := l.FilterCursorPos()
		if !l.DeleteFilterWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Backspace(l.ID, l.Filter)
		m.syncViewport()
		return true
	case "ctrl+a":
		return m.noteMove(l.MoveFilterCursorStart())
	case "ctrl+e":
		return m.noteMove(l.MoveFilterCursorEnd())
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := l.FilterCursorPos()
		if !l.DeleteFilterRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Backspace(l.ID, l.Filter)
		m.syncViewport()
		return true
	case tea.KeyLeft:
		return m.noteMove(l.MoveFilterCursorRuneBackward())
	case tea.KeyRight:
		return m.noteMove(l.MoveFilterCursorRuneForward())
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	l := m.rows
	before := l.FilterCursorPos()
	if !l.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Append(l.ID, l.Filter)
	m.syncViewport()
	return true
}

func (m *Model) noteMove(moved bool) bool {
	if moved {
		m.filterCursorDirty = true
	}
	return moved
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.rows.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}
