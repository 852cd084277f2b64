// Package route tracks the current location of the application shell and
// decides which navigation links count as active.
package route

import (
	"path"
	"strings"
)

// Home is the root location.
const Home = "/"

// Router holds the current path and the locations visited before it.
type Router struct {
	current string
	history []string
}

// New returns a router positioned at start, or at Home when start is empty.
func New(start string) *Router {
	return &Router{current: Clean(start)}
}

// Clean normalises p to an absolute path without a trailing slash.
func Clean(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return Home
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Current returns the active path.
func (r *Router) Current() string {
	return r.current
}

// Navigate moves to p. It reports false when p is already current.
func (r *Router) Navigate(p string) bool {
	p = Clean(p)
	if p == r.current {
		return false
	}
	r.history = append(r.history, r.current)
	r.current = p
	return true
}

// Back returns to the previous location, if any.
func (r *Router) Back() bool {
	n := len(r.history)
	if n == 0 {
		return false
	}
	r.current = r.history[n-1]
	r.history = r.history[:n-1]
	return true
}

// Depth reports how many locations Back can unwind.
func (r *Router) Depth() int {
	return len(r.history)
}

// IsActive reports whether link matches the current path. Home only matches
// itself; other links also match their descendants.
func (r *Router) IsActive(link string) bool {
	return Matches(r.current, link)
}

// Matches is the path-prefix rule used by IsActive.
func Matches(current, link string) bool {
	if strings.TrimSpace(link) == "" {
		return false
	}
	current, link = Clean(current), Clean(link)
	if link == Home {
		return current == Home
	}
	return current == link || strings.HasPrefix(current, link+"/")
}
