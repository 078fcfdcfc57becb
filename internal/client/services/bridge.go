package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/repositories/credential"
	"github.com/postpilot/postpilot/internal/logging"
)

// BridgeState enumerates the one-shot machine that finalizes an external
// provider redirect into application session state. The three route states
// are terminal.
type BridgeState int

const (
	StateStart BridgeState = iota
	StateTokenExtraction
	StateIdentityResolution
	StateRouteToSetup
	StateRouteToApp
	StateRouteToLogin
)

func (s BridgeState) Terminal() bool {
	return s == StateRouteToSetup || s == StateRouteToApp || s == StateRouteToLogin
}

func (s BridgeState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateTokenExtraction:
		return "token_extraction"
	case StateIdentityResolution:
		return "identity_resolution"
	case StateRouteToSetup:
		return "route_to_setup"
	case StateRouteToApp:
		return "route_to_app"
	case StateRouteToLogin:
		return "route_to_login"
	}
	return "unknown"
}

// Extraction is the pure result of inspecting a redirect URL. Cleaned is the
// URL with the token fragment stripped and the query string untouched, so a
// reload of it cannot re-trigger extraction and the token is not left
// visible. Suffix carries the provider-link confirmation marker to append to
// the final destination.
type Extraction struct {
	Token   string
	Cleaned string
	Suffix  string
}

// linkOKSuffix preserves the "?linkedin=ok" marker so the destination screen
// can show link-confirmation UI.
const linkOKSuffix = "?linkedin=ok"

// ExtractRedirect inspects a provider redirect URL for a "#token=<value>"
// fragment and a "?linkedin=ok" query marker. It performs no I/O.
func ExtractRedirect(raw string) (Extraction, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Extraction{}, fmt.Errorf("parse redirect url: %w", err)
	}

	var ex Extraction
	if v, ok := strings.CutPrefix(u.EscapedFragment(), "token="); ok {
		token, err := url.QueryUnescape(v)
		if err != nil {
			return Extraction{}, fmt.Errorf("decode token fragment: %w", err)
		}
		ex.Token = token
	}

	u.Fragment = ""
	u.RawFragment = ""
	ex.Cleaned = u.String()

	if u.Query().Get("linkedin") == "ok" {
		ex.Suffix = linkOKSuffix
	}
	return ex, nil
}

// OAuthBridge normalizes the two ways a credential can arrive after an
// external OAuth redirect and routes the user exactly once. Token commit
// strictly precedes identity resolution: resolution depends on the
// just-committed credential.
type OAuthBridge struct {
	tokens credential.Store
	api    client.Client
	log    logging.Logger

	state BridgeState
	dest  string
}

func NewOAuthBridge(tokens credential.Store, api client.Client, log logging.Logger) *OAuthBridge {
	return &OAuthBridge{tokens: tokens, api: api, log: log, state: StateStart}
}

// State returns the machine's current state.
func (b *OAuthBridge) State() BridgeState { return b.state }

// Run drives the machine from the redirect URL to a terminal route and
// returns the destination to navigate to. Every path terminates in exactly
// one navigation; any failure routes to the login screen without retry. A
// bridge instance is one-shot: repeated calls return the decided
// destination unchanged.
func (b *OAuthBridge) Run(ctx context.Context, rawURL string) string {
	if b.state.Terminal() {
		return b.dest
	}

	b.state = StateTokenExtraction
	ex, err := ExtractRedirect(rawURL)
	if err != nil {
		b.log.Warn(ctx, "bridge: redirect extraction failed", "error", err)
		return b.terminate(StateRouteToLogin, RouteLogin)
	}

	if ex.Token != "" {
		if err := b.tokens.Set(ctx, ex.Token); err != nil {
			b.log.Error(ctx, "bridge: credential commit failed", "error", err)
			return b.terminate(StateRouteToLogin, RouteLogin)
		}
	}

	b.state = StateIdentityResolution
	user, err := b.api.Me(ctx)
	if err != nil {
		// Sole error path: navigate silently, there is no stable screen
		// to show a message on during the bridge transition.
		b.log.Warn(ctx, "bridge: identity resolution failed", "error", err)
		return b.terminate(StateRouteToLogin, RouteLogin)
	}

	if !user.Onboarded {
		return b.terminate(StateRouteToSetup, RouteSetup+ex.Suffix)
	}
	return b.terminate(StateRouteToApp, RouteApp+ex.Suffix)
}

func (b *OAuthBridge) terminate(state BridgeState, dest string) string {
	b.state = state
	b.dest = dest
	return dest
}
