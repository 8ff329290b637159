package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/livery-popup-control/internal/format/table"
	"github.com/atomicstack/livery-popup-control/internal/game"
	"github.com/atomicstack/livery-popup-control/internal/livery"
	"github.com/atomicstack/livery-popup-control/internal/theme"
)

const swatchBlock = "██"

// View implements tea.Model.
func (m *Model) View() string {
	m.clearInfo()
	lines := make([]string, 0, 24)
	lines = append(lines, m.headerLine())

	if m.controller == nil {
		lines = append(lines, m.renderStyle(styles.Loading, "loading world…"))
		if status := m.statusLine(); status != "" {
			lines = append(lines, status)
		}
		return m.clampLines(lines)
	}

	lines = append(lines, m.tabsLine())
	if m.dropdown != nil {
		lines = append(lines, m.dropdownLines()...)
	} else {
		if m.controller.Class().IsGroup() {
			lines = append(lines, m.filterLine())
		}
		lines = append(lines, m.matrixLines()...)
	}
	if status := m.statusLine(); status != "" {
		lines = append(lines, status)
	}
	if m.showFooter {
		lines = append(lines, m.footerLine())
	}
	return m.clampLines(lines)
}

func (m *Model) headerLine() string {
	title := "Liveries"
	if m.controller != nil {
		if company, ok := m.stores.Company(m.controller.Company()); ok {
			title = fmt.Sprintf("Liveries: %s", company.Name)
		}
		if !m.controller.IsLocal() {
			title += " [read-only]"
		}
	}
	return m.renderStyle(styles.Header, title)
}

func (m *Model) tabsLine() string {
	parts := make([]string, 0, livery.NumClasses)
	for c := livery.Class(0); c < livery.NumClasses; c++ {
		label := fmt.Sprintf(" %d %s ", int(c)+1, c.String())
		if c == m.controller.Class() {
			parts = append(parts, m.renderStyle(styles.TabActive, label))
		} else {
			parts = append(parts, m.renderStyle(styles.Tab, label))
		}
	}
	return m.truncateLine(strings.Join(parts, " "))
}

// matrixLines renders the scheme or group rows with colour cells.
func (m *Model) matrixLines() []string {
	items := m.rows.Items
	if len(items) == 0 {
		msg := "(no rows)"
		if m.rows.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.rows.Filter)
		}
		return []string{m.renderStyle(styles.Info, msg)}
	}

	start := m.rows.ViewportOffset
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(items) > maxItems {
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(items) {
			start = len(items) - maxItems
		}
		items = items[start : start+maxItems]
	} else {
		start = 0
	}

	twoCC := m.stores.TwoColourSchemes()
	nameW, priW := 0, 0
	type rowData struct {
		label    string
		liv      game.Livery
		selected bool
		priText  string
		secText  string
	}
	rows := make([]rowData, 0, len(items))
	for _, item := range items {
		rd := rowData{label: item.Label}
		rd.liv, rd.selected = m.rowLivery(item.ID)
		rd.priText = slotLabel(rd.liv.Primary, rd.liv.PrimaryInUse())
		rd.secText = slotLabel(rd.liv.Secondary, rd.liv.SecondaryInUse())
		if w := len([]rune(rd.label)); w > nameW {
			nameW = w
		}
		if w := len([]rune(rd.priText)); w > priW {
			priW = w
		}
		rows = append(rows, rd)
	}

	out := make([]string, 0, len(rows))
	for i, rd := range rows {
		cursor := start+i == m.rows.Cursor
		indicator := "  "
		if cursor {
			indicator = m.renderStyle(styles.SelectedItemIndicator, "> ")
		}
		mark := "  "
		if rd.selected {
			mark = m.renderStyle(styles.ItemIndicator, "● ")
		}

		textStyle := styles.Item
		if cursor {
			textStyle = styles.SelectedItem
		}
		name := m.renderStyle(textStyle, pad(rd.label, nameW))

		pri := theme.Swatch(int(rd.liv.Primary)).Render(swatchBlock) + " " +
			m.renderStyle(slotStyle(textStyle, rd.liv.PrimaryInUse()), pad(rd.priText, priW))
		line := indicator + mark + name + "  " + pri
		if twoCC {
			sec := theme.Swatch(int(rd.liv.Secondary)).Render(swatchBlock) + " " +
				m.renderStyle(slotStyle(textStyle, rd.liv.SecondaryInUse()), rd.secText)
			line += "  " + sec
		}
		out = append(out, m.truncateLine(line))
	}
	return out
}

// rowLivery resolves the livery and selection state for one row item.
func (m *Model) rowLivery(id string) (game.Livery, bool) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return game.Livery{}, false
	}
	sel := m.controller.Selection()
	if m.controller.Class().IsGroup() {
		for _, row := range m.controller.Rows() {
			if int(row.Group.ID) == n {
				selected := false
				if gid, ok := sel.Group(); ok {
					selected = int(gid) == n
				}
				return row.Group.Livery, selected
			}
		}
		return game.Livery{}, false
	}
	company, ok := m.stores.Company(m.controller.Company())
	if !ok {
		return game.Livery{}, false
	}
	selected := false
	if set, ok := sel.Schemes(); ok {
		selected = set.Has(livery.Scheme(n))
	}
	return company.SchemeLivery(n), selected
}

func (m *Model) dropdownLines() []string {
	title := "Primary Colour"
	if m.dropdownSlot == game.SlotSecondary {
		title = "Secondary Colour"
	}
	out := []string{m.renderStyle(styles.Header, title)}

	items := m.dropdown.Items
	start := m.dropdown.ViewportOffset
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(items) > maxItems {
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(items) {
			start = len(items) - maxItems
		}
		items = items[start : start+maxItems]
	} else {
		start = 0
	}

	cells := make([][]string, 0, len(items))
	for _, item := range items {
		note := ""
		if idx, err := strconv.Atoi(item.ID); err == nil && idx < len(m.dropdownOptions) {
			if m.dropdownOptions[idx].Masked {
				note = "(in use)"
			}
		}
		cells = append(cells, []string{item.Label, note})
	}
	formatted := table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignLeft})

	for i, item := range items {
		idx, _ := strconv.Atoi(item.ID)
		var opt livery.ColourOption
		if idx >= 0 && idx < len(m.dropdownOptions) {
			opt = m.dropdownOptions[idx]
		}
		cursor := start+i == m.dropdown.Cursor
		indicator := "  "
		if cursor {
			indicator = m.renderStyle(styles.SelectedItemIndicator, "> ")
		}
		style := styles.Item
		switch {
		case opt.Masked:
			style = styles.Masked
		case cursor:
			style = styles.SelectedItem
		case opt.Default:
			style = styles.Inherited
		}
		swatch := theme.Swatch(int(opt.Display)).Render(swatchBlock)
		out = append(out, m.truncateLine(indicator+swatch+" "+m.renderStyle(style, formatted[i])))
	}
	return out
}

func (m *Model) statusLine() string {
	switch {
	case m.errMsg != "":
		return m.renderStyle(styles.Error, m.errMsg)
	case m.backendErr != "":
		return m.renderStyle(styles.Error, "world: "+m.backendErr)
	case m.infoMsg != "":
		return m.renderStyle(styles.Info, m.infoMsg)
	}
	return ""
}

func (m *Model) footerLine() string {
	hint := "tab class · enter select · ctrl+t toggle · ctrl+p/ctrl+s colour · esc quit"
	if m.dropdown != nil {
		hint = "enter apply · ctrl+t apply to class · esc back"
	}
	return m.renderStyle(styles.Footer, m.truncateLine(hint))
}

func (m *Model) filterLine() string {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.rows.Filter
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + m.renderStyle(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.rows.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	}
	before := m.renderStyle(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = m.renderStyle(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}
	return base.Reverse(true).Render(char)
}

// maxVisibleItems is the number of list rows that fit between the fixed
// chrome lines.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 0
	}
	reserved := 4 // header, tabs, filter or title, status
	if m.showFooter {
		reserved++
	}
	visible := m.height - reserved
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (m *Model) clampLines(lines []string) string {
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) truncateLine(line string) string {
	if m.width <= 0 {
		return line
	}
	return truncate.String(line, uint(m.width))
}

func (m *Model) renderStyle(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

// slotLabel shows the explicit colour name, or the inherited marker when
// the slot falls back to its parent scope.
func slotLabel(colour game.Colour, inUse bool) string {
	if !inUse {
		return "Default"
	}
	return livery.ColourName(colour)
}

func slotStyle(base *lipgloss.Style, inUse bool) *lipgloss.Style {
	if inUse {
		return base
	}
	return styles.Inherited
}

func pad(text string, width int) string {
	gap := width - len([]rune(text))
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}
