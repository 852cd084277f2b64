package events

import "github.com/atomicstack/staggered-menu/internal/logging"

type MenuTracer struct{}

type TimelineTracer struct{}

var (
	Menu     = MenuTracer{}
	Timeline = TimelineTracer{}
)

func (MenuTracer) Toggle(opening bool) {
	logging.Trace("menu.toggle", map[string]interface{}{"opening": opening})
}

func (MenuTracer) Ignored(phase string) {
	logging.Trace("menu.toggle.ignored", map[string]interface{}{"phase": phase})
}

func (MenuTracer) Close(phase string) {
	logging.Trace("menu.close", map[string]interface{}{"from": phase})
}

func (MenuTracer) Submenu(index int, expanded bool) {
	logging.Trace("menu.submenu", map[string]interface{}{"index": index, "expanded": expanded})
}

func (MenuTracer) Activate(link string) {
	logging.Trace("menu.activate", map[string]interface{}{"link": link})
}

func (MenuTracer) Command(name string, opening bool) {
	logging.Trace("menu.command", map[string]interface{}{"command": name, "opening": opening})
}

func (MenuTracer) ClickAway(attached bool) {
	logging.Trace("menu.click-away", map[string]interface{}{"attached": attached})
}

func (TimelineTracer) Open(layers, items int, duration float64) {
	logging.Trace("timeline.open", map[string]interface{}{
		"layers":   layers,
		"items":    items,
		"duration": duration,
	})
}

func (TimelineTracer) Close(duration float64) {
	logging.Trace("timeline.close", map[string]interface{}{"duration": duration})
}

func (TimelineTracer) Complete(phase string) {
	logging.Trace("timeline.complete", map[string]interface{}{"phase": phase})
}
