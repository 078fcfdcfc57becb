package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/models"
	"github.com/postpilot/postpilot/internal/client/repositories/credential"
)

// Auth defines the session-lifecycle and account-linking operations for the
// CLI.
//
// Contract:
//   - Login/Signup: obtain a credential from the service and commit it to
//     the store before returning; the returned string is the service's
//     success message.
//   - Logout: clear the stored credential. The only write paths to the
//     store are login, signup, and the OAuth bridge; logout is the only
//     clear path.
//   - Me: resolve identity and onboarding state; an error signals an
//     invalid or expired session.
//   - StartLink: obtain the external provider redirect target, using the
//     public variant when no session exists yet.
//   - SyncLink: refresh the cached provider profile data.
//   - TokenInfo: best-effort peek at the stored credential's claims.
type Auth interface {
	Login(ctx context.Context, loginID string, password []byte) (string, error)
	Signup(ctx context.Context, req client.SignupRequest) (string, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	StartLink(ctx context.Context, provider string, authenticated bool) (string, error)
	SyncLink(ctx context.Context, provider string) error
	TokenInfo(ctx context.Context) (*TokenInfo, error)
}

// TokenInfo is display-only metadata decoded from the bearer credential.
// Claims are parsed without signature verification; the service remains the
// sole authority on token validity.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

type authService struct {
	api    client.Client
	tokens credential.Store
}

// NewAuthService binds the session lifecycle to the given API client and
// credential store.
func NewAuthService(api client.Client, tokens credential.Store) Auth {
	return &authService{api: api, tokens: tokens}
}

func (a *authService) Login(ctx context.Context, loginID string, password []byte) (string, error) {
	res, err := a.api.Login(ctx, loginID, password)
	if err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("login response carried no credential")
	}
	if err := a.tokens.Set(ctx, res.AccessToken); err != nil {
		return "", fmt.Errorf("persist credential: %w", err)
	}
	return res.Message, nil
}

func (a *authService) Signup(ctx context.Context, req client.SignupRequest) (string, error) {
	res, err := a.api.Signup(ctx, req)
	if err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("signup response carried no credential")
	}
	if err := a.tokens.Set(ctx, res.AccessToken); err != nil {
		return "", fmt.Errorf("persist credential: %w", err)
	}
	return res.Message, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.tokens.Clear(ctx)
}

func (a *authService) Me(ctx context.Context) (*models.User, error) {
	return a.api.Me(ctx)
}

func (a *authService) StartLink(ctx context.Context, provider string, authenticated bool) (string, error) {
	if authenticated {
		return a.api.OAuthStartURL(ctx, provider)
	}
	return a.api.OAuthStartPublicURL(ctx, provider)
}

func (a *authService) SyncLink(ctx context.Context, provider string) error {
	return a.api.OAuthSync(ctx, provider)
}

func (a *authService) TokenInfo(ctx context.Context) (*TokenInfo, error) {
	token, err := a.tokens.Get(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, client.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
