// Package cli provides the interactive PostPilot command-line client.
//
// It wires configuration, the local credential store, API services, and an
// interactive REPL organized around named screens that mirror the service's
// navigation model: login, signup, setup, the app dashboard, compose, and
// profile. Screens under /app require an authenticated session; the gate
// redirects to the login screen otherwise.
//
// Key features:
//   - Login / Signup / Logout with a durable local session
//   - LinkedIn account linking via a loopback OAuth callback
//   - Generate / Schedule / Publish AI content drafts
//   - Branding profile setup and resume upload
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
