package cli

import (
	"context"
	"time"

	"github.com/postpilot/postpilot/internal/client/callback"
	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/services"
)

// linkWaitTimeout bounds how long the CLI waits for the browser to come
// back with the provider redirect.
const linkWaitTimeout = 5 * time.Minute

// Link runs the full LinkedIn OAuth flow: obtain the provider URL, stand up
// the loopback callback listener, wait for the browser redirect, and hand
// the redirect URL to the bridge for token commit and routing.
func (a *App) Link(ctx context.Context) error {
	srv, err := callback.NewServer(a.config.CallbackAddr, a.log)
	if err != nil {
		printlnFn("Failed to start callback listener:", err.Error())
		return err
	}
	go func() { _ = srv.Serve() }()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	u, err := a.auth.StartLink(ctx, services.DefaultProvider, a.gate.IsAuthenticated(ctx))
	if err != nil {
		printlnFn(client.ErrorDetail(err, "Failed to start LinkedIn linking"))
		return err
	}

	printlnFn("Open this URL in your browser to connect LinkedIn:")
	printlnFn(" ", u)
	printlnFn("Waiting for the redirect on", srv.URL(), "...")

	waitCtx, cancel := context.WithTimeout(ctx, linkWaitTimeout)
	defer cancel()
	raw, err := srv.Wait(waitCtx)
	if err != nil {
		printlnFn("No redirect received:", err.Error())
		return err
	}

	dest := services.NewOAuthBridge(a.tokens, a.api, a.log).Run(ctx, raw)
	a.navigate(ctx, dest)
	return nil
}

// Bridge finalizes a pasted redirect URL, for flows where the browser
// redirect cannot reach the loopback listener.
func (a *App) Bridge(ctx context.Context, rawURL string) error {
	if rawURL == "" {
		printlnFn("Usage: bridge <redirect-url>")
		return nil
	}
	dest := services.NewOAuthBridge(a.tokens, a.api, a.log).Run(ctx, rawURL)
	a.navigate(ctx, dest)
	return nil
}

// Sync refreshes the cached LinkedIn profile data for the linked account.
func (a *App) Sync(ctx context.Context) error {
	if err := a.auth.SyncLink(ctx, services.DefaultProvider); err != nil {
		printlnFn(client.ErrorDetail(err, "Failed to sync LinkedIn data"))
		return err
	}
	printlnFn("LinkedIn data synced.")
	return nil
}
