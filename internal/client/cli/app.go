package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/config"
	"github.com/postpilot/postpilot/internal/client/repositories/credential"
	"github.com/postpilot/postpilot/internal/client/services"
	"github.com/postpilot/postpilot/internal/filex"
	"github.com/postpilot/postpilot/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired client: configuration, the API client, the credential
// store, and the services driving each screen. route is the screen the user
// is currently on.
type App struct {
	config   *config.Config
	log      logging.Logger
	api      client.Client
	tokens   credential.Store
	auth     services.Auth
	gate     *services.SessionGate
	pipeline *services.Pipeline
	profiles *services.ProfileService
	reader   *bufio.Reader
	route    string
	userName string
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		log.Error(ctx, "error preparing database directory", "error", err)
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tokens := credential.NewSQLiteRepository(db)
	api := client.NewHTTPClient(c.ServerBaseURL, tokens, c.RequestTimeout, c.GenerateRatePerMin)

	return &App{
		config:   c,
		log:      log,
		api:      api,
		tokens:   tokens,
		auth:     services.NewAuthService(api, tokens),
		gate:     services.NewSessionGate(tokens),
		pipeline: services.NewPipeline(api, log, nil),
		profiles: services.NewProfileService(api),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.gate.IsAuthenticated(context.Background())
}

// navigate moves to dest, honoring the session gate. A "?linkedin=ok" marker
// on the destination is consumed here and surfaced as a confirmation notice
// rather than kept in the route name.
func (a *App) navigate(ctx context.Context, dest string) {
	var linked bool
	if s, ok := strings.CutSuffix(dest, "?linkedin=ok"); ok {
		dest = s
		linked = true
	}

	d := a.gate.Authorize(ctx, dest)
	if !d.Allowed {
		printlnFn("Please log in first.")
		a.route = d.RedirectTo
		return
	}

	a.route = dest
	if linked {
		printlnFn("LinkedIn connected.")
	}
}

// getStatus renders the prompt decoration: the user name when known and the
// current screen.
func (a *App) getStatus() string {
	s := a.route
	if a.userName != "" {
		s = fmt.Sprintf("%s %s", a.userName, a.route)
	}
	if s == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", s)
}
