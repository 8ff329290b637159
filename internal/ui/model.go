package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/livery-popup-control/internal/backend"
	"github.com/atomicstack/livery-popup-control/internal/data/dispatcher"
	"github.com/atomicstack/livery-popup-control/internal/game"
	"github.com/atomicstack/livery-popup-control/internal/livery"
	"github.com/atomicstack/livery-popup-control/internal/logging/events"
	"github.com/atomicstack/livery-popup-control/internal/state"
	"github.com/atomicstack/livery-popup-control/internal/theme"
	"github.com/atomicstack/livery-popup-control/internal/ui/command"
	uistate "github.com/atomicstack/livery-popup-control/internal/ui/state"
)

var styles = theme.Default()

type uiList = uistate.List

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the livery popup.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	backend    *backend.Watcher
	backendErr string

	stores     *state.Stores
	dispatcher *dispatcher.Dispatcher
	controller *livery.Controller
	bus        *command.Bus

	// companyOverride selects the company to edit; InvalidCompany means
	// the local company from the world snapshot. openGroup jumps to a
	// group on startup; InvalidGroup means none.
	companyOverride game.CompanyID
	openGroup       game.GroupID

	rows *uistate.List

	// dropdown is non-nil while a colour dropdown is open.
	dropdown        *uistate.List
	dropdownSlot    game.Slot
	dropdownOptions []livery.ColourOption

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state. The controller is created once the
// first world snapshot arrives; until then the model renders a loading
// line.
func NewModel(width, height int, showFooter, verbose bool, watcher *backend.Watcher, outbox *game.Outbox, company game.CompanyID, group game.GroupID) *Model {
	stores := state.NewStores()
	m := &Model{
		backend:         watcher,
		stores:          stores,
		dispatcher:      dispatcher.New(stores),
		bus:             command.New(outbox),
		showFooter:      showFooter,
		verbose:         verbose,
		companyOverride: company,
		openGroup:       group,
		rows:            uistate.NewList("rows", nil),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):      m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):       m.handleBackendDoneMsg,
		reflect.TypeOf(command.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	m.syncViewport()
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if m.verbose {
		m.setInfo(result.Label)
	}
	events.Action.Success(result.Label)
	return nil
}

func (m *Model) setInfo(info string) {
	m.infoMsg = info
	m.infoExpire = time.Now().Add(4 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

// activeList is the pane keys act on: the dropdown while it is open,
// otherwise the matrix rows.
func (m *Model) activeList() *uistate.List {
	if m.dropdown != nil {
		return m.dropdown
	}
	return m.rows
}

func (m *Model) syncViewport() {
	if l := m.activeList(); l != nil {
		l.EnsureCursorVisible(m.maxVisibleItems())
	}
}
