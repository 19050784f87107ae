package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/retailhub/internal/client/client"
	"github.com/dmitrijs2005/retailhub/internal/client/config"
	"github.com/dmitrijs2005/retailhub/internal/client/guard"
	"github.com/dmitrijs2005/retailhub/internal/client/services"
	"github.com/dmitrijs2005/retailhub/internal/client/session"

	_ "modernc.org/sqlite"
)

// App wires the client together: the session manager, the REST client with
// its auth envelope, the route guards, and the screens. It also implements
// guard.Navigator: a "navigation" is a guarded switch of the current
// screen.
type App struct {
	config  *config.Config
	auth    *services.AuthService
	session *session.Manager
	guard   *guard.Guard

	reader *bufio.Reader
	out    io.Writer

	route    string
	returnTo string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	sess := session.NewManager(db)

	app := &App{
		config:  c,
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		route:   guard.RouteLogin,
	}

	apiClient := client.NewRESTClient(c.ServerBaseURL, sess, app.onAuthRejected)
	app.auth = services.NewAuthService(apiClient, sess)
	app.guard = guard.New(sess, app, guard.Options{PreserveReturnURL: c.PreserveReturnURL})

	return app, nil
}

// NavigateTo switches the current screen. A non-empty returnTo remembers
// the originally attempted destination for a post-login return.
func (a *App) NavigateTo(route string, returnTo string) {
	a.route = route
	if returnTo != "" {
		a.returnTo = returnTo
	}
	fmt.Fprintf(a.out, "-> %s\n", route)
}

// onAuthRejected is the request envelope's 401 hook: back to the login
// screen. The failed call still surfaces its error to whichever screen
// issued it.
func (a *App) onAuthRejected() {
	fmt.Fprintln(a.out, "Session rejected by server. Please log in again.")
	a.NavigateTo(guard.RouteLogin, "")
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

func (a *App) getStatus(ctx context.Context) string {
	u := a.session.Current(ctx)
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Email)
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to RetailHub (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, scanner)
}
