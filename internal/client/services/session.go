package services

import (
	"context"
	"strings"

	"github.com/postpilot/postpilot/internal/client/repositories/credential"
)

// Route names for the screens the CLI navigates between. Everything under
// RouteApp requires an authenticated session.
const (
	RouteLogin   = "/login"
	RouteSignup  = "/signup"
	RouteBridge  = "/oauth/bridge"
	RouteApp     = "/app"
	RouteSetup   = "/app/setup"
	RouteCompose = "/app/compose"
	RouteProfile = "/app/profile"
)

// Decision is a guard outcome: entry is either allowed or must be redirected
// to another route. It is a clean rejection the navigation layer consumes
// uniformly, never an error.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func Allow() Decision { return Decision{Allowed: true} }

func Redirect(route string) Decision { return Decision{RedirectTo: route} }

// SessionGate derives the session from the credential store and produces
// access decisions for route protection.
type SessionGate struct {
	tokens credential.Store
}

func NewSessionGate(tokens credential.Store) *SessionGate {
	return &SessionGate{tokens: tokens}
}

// IsAuthenticated reports whether a credential is present. Store read
// failures count as unauthenticated.
func (g *SessionGate) IsAuthenticated(ctx context.Context) bool {
	token, err := g.tokens.Get(ctx)
	return err == nil && token != ""
}

// Authorize gates entry to route. Protected routes redirect to the login
// screen when no credential is present. The setup route is gated identically
// to every other authenticated route: which authenticated screen to land on
// is decided once by the bridge or the login flow, not re-checked here.
func (g *SessionGate) Authorize(ctx context.Context, route string) Decision {
	if !strings.HasPrefix(route, RouteApp) {
		return Allow()
	}
	if g.IsAuthenticated(ctx) {
		return Allow()
	}
	return Redirect(RouteLogin)
}
