package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/internal/client/models"
	"github.com/postpilot/postpilot/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExtractRedirect_TokenFragment(t *testing.T) {
	ex, err := ExtractRedirect("https://app.local/oauth/bridge#token=ABC")
	require.NoError(t, err)

	assert.Equal(t, "ABC", ex.Token)
	assert.Equal(t, "https://app.local/oauth/bridge", ex.Cleaned)
	assert.Empty(t, ex.Suffix)
}

func TestExtractRedirect_URLDecodesToken(t *testing.T) {
	ex, err := ExtractRedirect("https://app.local/oauth/bridge#token=eyJ%2Bab%3D%3D")
	require.NoError(t, err)
	assert.Equal(t, "eyJ+ab==", ex.Token)
}

func TestExtractRedirect_StripsFragmentButKeepsQuery(t *testing.T) {
	ex, err := ExtractRedirect("https://app.local/oauth/bridge?linkedin=ok#token=ABC")
	require.NoError(t, err)

	assert.Equal(t, "ABC", ex.Token)
	assert.Equal(t, "https://app.local/oauth/bridge?linkedin=ok", ex.Cleaned)
	assert.Equal(t, "?linkedin=ok", ex.Suffix)
}

func TestExtractRedirect_NoFragment(t *testing.T) {
	ex, err := ExtractRedirect("https://app.local/oauth/bridge?linkedin=ok")
	require.NoError(t, err)

	assert.Empty(t, ex.Token)
	assert.Equal(t, "?linkedin=ok", ex.Suffix)
}

func TestExtractRedirect_UnrelatedFragmentIgnored(t *testing.T) {
	ex, err := ExtractRedirect("https://app.local/oauth/bridge#section-2")
	require.NoError(t, err)
	assert.Empty(t, ex.Token)
}

func TestExtractRedirect_MalformedURL(t *testing.T) {
	_, err := ExtractRedirect("://not-a-url")
	require.Error(t, err)
}

func TestBridge_Run_RoutesToSetupWhenNotOnboarded(t *testing.T) {
	store := &memStore{}
	f := &fakeClient{MeRes: &models.User{ID: 1, Onboarded: false}}
	b := NewOAuthBridge(store, f, discardLogger())

	dest := b.Run(context.Background(), "https://app.local/oauth/bridge?linkedin=ok#token=ABC")

	assert.Equal(t, RouteSetup+"?linkedin=ok", dest)
	assert.Equal(t, StateRouteToSetup, b.State())
	assert.Equal(t, "ABC", store.token)
}

func TestBridge_Run_RoutesToAppWhenOnboarded(t *testing.T) {
	store := &memStore{}
	f := &fakeClient{MeRes: &models.User{ID: 1, Onboarded: true}}
	b := NewOAuthBridge(store, f, discardLogger())

	dest := b.Run(context.Background(), "https://app.local/oauth/bridge#token=ABC")

	assert.Equal(t, RouteApp, dest)
	assert.Equal(t, StateRouteToApp, b.State())
}

func TestBridge_Run_IdentityFailureRoutesToLogin(t *testing.T) {
	store := &memStore{}
	f := &fakeClient{MeErr: errors.New("401")}
	b := NewOAuthBridge(store, f, discardLogger())

	dest := b.Run(context.Background(), "https://app.local/oauth/bridge#token=ABC")

	assert.Equal(t, RouteLogin, dest)
	assert.Equal(t, StateRouteToLogin, b.State())
	// The token commit itself still happened; only resolution failed.
	assert.Equal(t, "ABC", store.token)
}

func TestBridge_Run_NoTokenNoSession_RoutesToLogin(t *testing.T) {
	store := &memStore{}
	f := &fakeClient{MeErr: errors.New("401")}
	b := NewOAuthBridge(store, f, discardLogger())

	dest := b.Run(context.Background(), "https://app.local/oauth/bridge")

	assert.Equal(t, RouteLogin, dest)
	assert.Empty(t, store.token)
}

func TestBridge_Run_CommitsTokenBeforeIdentityResolution(t *testing.T) {
	store := &memStore{}
	var tokenAtResolution string
	f := &fakeClient{MeRes: &models.User{Onboarded: true}}
	f.OnMe = func(ctx context.Context) {
		tokenAtResolution, _ = store.Get(ctx)
	}
	b := NewOAuthBridge(store, f, discardLogger())

	b.Run(context.Background(), "https://app.local/oauth/bridge#token=ABC")

	assert.Equal(t, "ABC", tokenAtResolution, "credential must be committed before /auth/me is issued")
}

func TestBridge_Run_CommitFailureRoutesToLoginWithoutResolution(t *testing.T) {
	store := &memStore{setErr: errors.New("disk full")}
	f := &fakeClient{MeRes: &models.User{Onboarded: true}}
	b := NewOAuthBridge(store, f, discardLogger())

	dest := b.Run(context.Background(), "https://app.local/oauth/bridge#token=ABC")

	assert.Equal(t, RouteLogin, dest)
	assert.Equal(t, 0, f.MeCalls)
}

func TestBridge_Run_IsOneShot(t *testing.T) {
	store := &memStore{}
	f := &fakeClient{MeRes: &models.User{Onboarded: true}}
	b := NewOAuthBridge(store, f, discardLogger())

	first := b.Run(context.Background(), "https://app.local/oauth/bridge#token=ABC")
	second := b.Run(context.Background(), "https://app.local/oauth/bridge#token=OTHER")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.MeCalls, "identity resolution must run exactly once")
	assert.Equal(t, "ABC", store.token, "second run must not re-extract")
}

func TestBridge_ReloadOfCleanedURL_DoesNotChangeToken(t *testing.T) {
	store := &memStore{}
	f := &fakeClient{MeRes: &models.User{Onboarded: true}}

	raw := "https://app.local/oauth/bridge?linkedin=ok#token=ABC"
	NewOAuthBridge(store, f, discardLogger()).Run(context.Background(), raw)
	require.Equal(t, "ABC", store.token)

	ex, err := ExtractRedirect(raw)
	require.NoError(t, err)

	// A reload arrives on the cleaned, fragment-less URL: a fresh bridge
	// run must leave the stored token untouched.
	NewOAuthBridge(store, f, discardLogger()).Run(context.Background(), ex.Cleaned)
	assert.Equal(t, "ABC", store.token)
}

func TestBridgeState_Strings(t *testing.T) {
	assert.Equal(t, "start", StateStart.String())
	assert.Equal(t, "route_to_login", StateRouteToLogin.String())
	assert.False(t, StateIdentityResolution.Terminal())
	assert.True(t, StateRouteToApp.Terminal())
}
