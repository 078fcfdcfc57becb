package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/postpilot/postpilot/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	guard(ctx context.Context, route string) bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Link(ctx context.Context) error
	Bridge(ctx context.Context, rawURL string) error
	Sync(ctx context.Context) error
	Generate(ctx context.Context) error
	Schedule(ctx context.Context) error
	Publish(ctx context.Context) error
	Draft(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Summary(ctx context.Context) error
	UploadResume(ctx context.Context, path string) error
}

// guard gates entry to a protected screen before running its command. While
// the user is still on the setup screen, every protected command keeps them
// there: setup is left only by saving the profile.
func (a *App) guard(ctx context.Context, route string) bool {
	if a.route == services.RouteSetup {
		route = services.RouteSetup
	}
	d := a.gate.Authorize(ctx, route)
	if !d.Allowed {
		printlnFn("Please log in first.")
		a.route = d.RedirectTo
		return false
	}
	a.route = route
	return true
}

// runREPL starts a simple read-eval-print loop for the PostPilot CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - link           — sign in via LinkedIn
//	  - bridge <url>   — finalize a pasted OAuth redirect URL
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - generate       — generate a content draft
//	  - schedule       — schedule the current draft
//	  - publish        — publish the current draft now
//	  - draft          — show the current draft
//	  - profile        — show the branding profile
//	  - edit           — edit and save the branding profile
//	  - summary        — show the generation background
//	  - upload <path>  — upload a PDF resume
//	  - sync           — refresh linked LinkedIn data
//	  - whoami         — show the signed-in identity
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pp %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: generate, schedule, publish, draft, profile, edit, summary, upload, link, sync, whoami, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, link, bridge, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "link":
			_ = a.Link(ctx)

		case "bridge":
			raw := ""
			if len(args) > 0 {
				raw = args[0]
			}
			_ = a.Bridge(ctx, raw)

		case "sync":
			if a.guard(ctx, services.RouteApp) {
				_ = a.Sync(ctx)
			}

		case "generate":
			if a.guard(ctx, services.RouteCompose) {
				_ = a.Generate(ctx)
			}

		case "schedule":
			if a.guard(ctx, services.RouteCompose) {
				_ = a.Schedule(ctx)
			}

		case "publish":
			if a.guard(ctx, services.RouteCompose) {
				_ = a.Publish(ctx)
			}

		case "draft":
			if a.guard(ctx, services.RouteCompose) {
				_ = a.Draft(ctx)
			}

		case "profile":
			if a.guard(ctx, services.RouteProfile) {
				_ = a.ShowProfile(ctx)
			}

		case "edit":
			if a.guard(ctx, services.RouteProfile) {
				_ = a.EditProfile(ctx)
			}

		case "summary":
			if a.guard(ctx, services.RouteApp) {
				_ = a.Summary(ctx)
			}

		case "upload":
			if a.guard(ctx, services.RouteProfile) {
				path := ""
				if len(args) > 0 {
					path = args[0]
				}
				_ = a.UploadResume(ctx, path)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Root lands the user on the screen matching the durable session and starts
// the REPL. A restart with a stored credential goes straight to the
// dashboard; without one, to the login screen.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to PostPilot CLI (type 'help' for commands)")

	if a.isLoggedIn() {
		a.routeBySession(ctx)
	} else {
		a.route = services.RouteLogin
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
