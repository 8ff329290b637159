package events

import "github.com/atomicstack/livery-popup-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) WorldLoaded(companies, groups int) {
	logging.Trace("app.world", map[string]interface{}{"companies": companies, "groups": groups})
}
