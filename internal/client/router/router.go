// Package router maps console paths to screens.
package router

import (
	"errors"
	"fmt"
	"strings"
)

// Screen identifies one of the console screens.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenSession
	ScreenUsers
)

func (s Screen) String() string {
	switch s {
	case ScreenSession:
		return "session"
	case ScreenUsers:
		return "users"
	default:
		return "none"
	}
}

const (
	PathRoot           = "/"
	PathLogin          = "/login"
	PathUserManagement = "/user-management"
	PathForgotPassword = "/forgot-password"
	PathSignup         = "/signup"
)

var (
	// ErrNoScreen is returned for paths the login form links to but which
	// have no screen behind them.
	ErrNoScreen = errors.New("no screen for path")

	ErrUnknownPath = errors.New("unknown path")
)

var routes = map[string]Screen{
	PathRoot:           ScreenSession,
	PathLogin:          ScreenSession,
	PathUserManagement: ScreenUsers,
	PathForgotPassword: ScreenNone,
	PathSignup:         ScreenNone,
}

// Clean normalises a path: leading slash added, trailing slashes dropped.
func Clean(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if trimmed := strings.TrimRight(path, "/"); trimmed != "" {
		return trimmed
	}
	return PathRoot
}

// Resolve returns the screen for path.
func Resolve(path string) (Screen, error) {
	p := Clean(path)
	s, ok := routes[p]
	switch {
	case !ok:
		return ScreenNone, fmt.Errorf("%w: %s", ErrUnknownPath, p)
	case s == ScreenNone:
		return ScreenNone, fmt.Errorf("%w: %s", ErrNoScreen, p)
	}
	return s, nil
}

// PathFor returns the canonical path of a screen, "" for ScreenNone.
func PathFor(s Screen) string {
	switch s {
	case ScreenSession:
		return PathLogin
	case ScreenUsers:
		return PathUserManagement
	default:
		return ""
	}
}
