package command

import (
	"fmt"

	"github.com/atomicstack/staggered-menu/internal/logging/events"
	"github.com/atomicstack/staggered-menu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request is one panel activation: the registered action and the link or
// path it targets.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Target  string
}

// Bus turns panel activations into Bubble Tea commands.
type Bus struct{}

func New() *Bus {
	return &Bus{}
}

// Execute resolves the action against ctx immediately, so it sees the
// session and route as they were when the entry was activated. It returns
// nil when there is nothing to run. A panicking action is reported as a
// failed ActionResult instead of taking the program down.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	cmd := req.Handler(ctx, req.Target)
	if cmd == nil {
		events.Command.NoOp(req.ID, req.Label)
		return nil
	}
	events.Command.Queue(req.ID, req.Label)
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = menu.ActionResult{Err: fmt.Errorf("%s: %v", req.Label, r)}
			}
			events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		}()
		return cmd()
	}
}
