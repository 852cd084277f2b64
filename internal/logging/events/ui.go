package events

import "github.com/atomicstack/staggered-menu/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type ConfigTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Config  = ConfigTracer{}
)

func (UITracer) Cursor(cursor int, label string) {
	logging.Trace("panel.cursor", map[string]interface{}{"cursor": cursor, "label": label})
}

func (UITracer) Jump(query, label string) {
	logging.Trace("panel.jump", map[string]interface{}{"query": query, "label": label})
}

func (UITracer) Navigate(from, to string) {
	logging.Trace("route.navigate", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Session(signedIn, admin bool) {
	logging.Trace("session.change", map[string]interface{}{"signedIn": signedIn, "admin": admin})
}

func (UITracer) Theme(name string) {
	logging.Trace("theme.change", map[string]interface{}{"theme": name})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (ConfigTracer) Reload(path string, items int) {
	logging.Trace("config.reload", map[string]interface{}{"path": path, "items": items})
}

func (ConfigTracer) ReloadError(path string, err error) {
	logging.Trace("config.reload.error", map[string]interface{}{"path": path, "error": err.Error()})
}
