package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Action identifiers understood by the registry.
const (
	ActionNavigate = "navigate"
	ActionSignIn   = "sign-in"
	ActionSignOut  = "sign-out"
	ActionTheme    = "theme"
)

// AuthPath is where the sign-in action sends the user.
const AuthPath = "/auth"

// Node represents an action definition within the registry.
type Node struct {
	ID     string
	Action Action
}

// Registry exposes lookup utilities for action definitions.
type Registry struct {
	nodes map[string]*Node
}

// BuildRegistry constructs the registry from the action handler map.
func BuildRegistry() *Registry {
	nodes := make(map[string]*Node)
	for id, action := range ActionHandlers() {
		nodes[id] = &Node{ID: id, Action: action}
	}
	return &Registry{nodes: nodes}
}

// ActionHandlers maps action identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		ActionNavigate: NavigateAction,
		ActionSignIn:   SignInAction,
		ActionSignOut:  SignOutAction,
		ActionTheme:    ThemeAction,
	}
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// NavigateAction routes to target.
func NavigateAction(ctx Context, target string) tea.Cmd {
	path := strings.TrimSpace(target)
	if path == "" || !strings.HasPrefix(path, "/") {
		return func() tea.Msg {
			return ActionResult{Err: fmt.Errorf("invalid link %q", target)}
		}
	}
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// SignInAction routes to the sign-in page.
func SignInAction(ctx Context, _ string) tea.Cmd {
	return NavigateAction(ctx, AuthPath)
}

// SignOutAction drops the current session.
func SignOutAction(ctx Context, _ string) tea.Cmd {
	if !ctx.Session.SignedIn {
		return nil
	}
	return func() tea.Msg {
		return SessionMsg{Session: Session{}}
	}
}

// ThemeAction flips the colour palette.
func ThemeAction(Context, string) tea.Cmd {
	return func() tea.Msg {
		return ThemeMsg{}
	}
}
