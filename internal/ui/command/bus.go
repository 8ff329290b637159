package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/livery-popup-control/internal/game"
	"github.com/atomicstack/livery-popup-control/internal/logging/events"
)

// Request is a batch of livery commands produced by one user action.
type Request struct {
	Label    string
	Commands []game.Command
}

// ActionResult reports the outcome of a dispatched request.
type ActionResult struct {
	Label string
	Count int
	Err   error
}

// Bus hands command requests to the outbox and wraps them into Bubble Tea
// commands while emitting trace logs.
type Bus struct {
	outbox *game.Outbox
}

// New initialises a command bus writing through the given outbox.
func New(outbox *game.Outbox) *Bus {
	return &Bus{outbox: outbox}
}

// Execute dispatches the request's commands asynchronously. Dispatch is
// fire-and-forget: success means the requests were written, not that the
// game applied them.
func (b *Bus) Execute(req Request) tea.Cmd {
	return func() tea.Msg {
		if len(req.Commands) == 0 {
			events.Command.Skip("", req.Label)
			return nil
		}
		for _, cmd := range req.Commands {
			events.Command.Queue(string(cmd.Kind), req.Label)
			if err := b.outbox.Dispatch(cmd); err != nil {
				events.Action.Error(err)
				return ActionResult{Label: req.Label, Err: err}
			}
		}
		result := ActionResult{Label: req.Label, Count: len(req.Commands)}
		events.Command.Result(string(req.Commands[0].Kind), req.Label, fmt.Sprintf("%T", result))
		return result
	}
}
