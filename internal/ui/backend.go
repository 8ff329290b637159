package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/livery-popup-control/internal/backend"
	"github.com/atomicstack/livery-popup-control/internal/logging/events"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.backendErr = evt.Err.Error()
		return
	}
	m.backendErr = ""

	res := m.dispatcher.Handle(evt)

	if m.controller == nil {
		events.App.WorldLoaded(len(m.stores.Companies()), len(m.stores.Groups()))
		m.initController()
		return
	}
	if !res.Changed() {
		return
	}

	// Feature changes can retire the selected schemes outright, so the
	// active class is re-entered from scratch, mirroring a full window
	// reset. Group changes invalidate only the affected mode's rows.
	if res.FeaturesUpdated {
		m.controller.SwitchClass(m.controller.Class())
	}
	for _, vtype := range res.GroupsChanged {
		m.controller.Invalidate(vtype, true)
	}
	if res.CompaniesUpdated || res.FeaturesUpdated {
		m.controller.Invalidate(0, false)
	}
	m.refreshRows()
}
