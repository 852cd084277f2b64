// Package ui contains the Bubble Tea program that renders the navigation
// overlay on top of the current page.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse presses, frames, navigation, session changes and
//     menu file reloads).
//   - Keys and pointer presses become overlay operations (Toggle, Close,
//     ToggleSubmenu, Activate). Every press is first fanned out through the
//     overlay.PointerHub so the click-away watcher sees it before anything
//     else does.
//   - Panel actions run through internal/ui/command, which wraps the handlers
//     from internal/menu into tea.Cmd values. Their messages (NavigateMsg,
//     SessionMsg, ThemeMsg, ActionResult) come back through Update.
//
// Animation clock:
//   - The overlay owns a tween scheduler that only moves when advanced. The
//     model schedules one frameMsg at a time with tea.Tick while anything is
//     animating and stops ticking once the scheduler is idle. Tests swap the
//     frame command out through Harness and advance time explicitly.
//
// Rendering:
//   - View builds the page body for the current route, then composites the
//     background layers and the panel over it, each shifted horizontally by
//     its live offset. Item rows read their lift, tilt and number opacity
//     from the overlay every frame.
//
// Backend interactions:
//   - A backend.Watcher streams reloads of the menu file; applyBackendEvent
//     merges them into Options and remounts a closed overlay.
package ui
