package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/config"
	"github.com/dmitrijs2005/userconsole/internal/client/router"
	"github.com/dmitrijs2005/userconsole/internal/client/screens"
	"github.com/dmitrijs2005/userconsole/internal/client/services"
	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

var errWrongScreen = errors.New("command is not available on this screen")

// App is the terminal console. It owns one instance of each screen and the
// current path.
type App struct {
	session *screens.SessionEntry
	users   *screens.CollectionManager
	log     logging.Logger
	path    string
}

// NewApp wires the HTTP client, services and screens for cfg.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	c := client.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)
	return newApp(
		screens.NewSessionEntry(services.NewAuthService(c, log), log),
		screens.NewCollectionManager(services.NewUserService(c, log), log),
		log,
	)
}

func newApp(session *screens.SessionEntry, users *screens.CollectionManager, log logging.Logger) *App {
	return &App{
		session: session,
		users:   users,
		log:     log,
		path:    router.PathRoot,
	}
}

// Run shows the login screen and blocks in the REPL until the user exits or
// stdin is closed.
func (a *App) Run(ctx context.Context) {
	printlnFn("User console (type 'help' for commands)")
	a.renderSession()
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) getStatus() string {
	return a.path
}

func (a *App) screen() router.Screen {
	s, _ := router.Resolve(a.path)
	return s
}

// Navigate switches to path. Entering the Collection Manager loads the
// collection. Paths without a screen leave the console where it is.
func (a *App) Navigate(ctx context.Context, path string) error {
	s, err := router.Resolve(path)
	if err != nil {
		return err
	}
	a.path = router.Clean(path)
	a.log.Debug(ctx, "navigated", "path", a.path, "screen", s.String())

	if s == router.ScreenUsers {
		// a failed load is shown under the table
		if err := a.users.List(ctx); errors.Is(err, screens.ErrBusy) {
			return err
		}
	}
	return a.Show(ctx)
}

func (a *App) SetUsername(v string) error {
	if a.screen() != router.ScreenSession {
		return errWrongScreen
	}
	a.session.SetUsername(v)
	return nil
}

// SetPassword takes the password from args, or prompts for it without echo
// when none is given.
func (a *App) SetPassword(args []string) error {
	if a.screen() != router.ScreenSession {
		return errWrongScreen
	}
	if len(args) > 0 {
		a.session.SetPassword(strings.Join(args, " "))
		return nil
	}
	pw, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	a.session.SetPassword(string(pw))
	return nil
}

// Login submits the form; success moves to the Collection Manager.
func (a *App) Login(ctx context.Context) error {
	if a.screen() != router.ScreenSession {
		return errWrongScreen
	}
	ok, err := a.session.Submit(ctx)
	if err != nil {
		return err
	}
	if !ok {
		a.renderSession()
		return nil
	}
	return a.Navigate(ctx, router.PathUserManagement)
}

func (a *App) List(ctx context.Context) error {
	if a.screen() != router.ScreenUsers {
		return errWrongScreen
	}
	if err := a.users.List(ctx); errors.Is(err, screens.ErrBusy) {
		return err
	}
	a.renderUsers()
	return nil
}

func (a *App) Add() error {
	if a.screen() != router.ScreenUsers {
		return errWrongScreen
	}
	if err := a.users.OpenCreate(); err != nil {
		return err
	}
	a.renderUsers()
	return nil
}

func (a *App) Edit(id string) error {
	if a.screen() != router.ScreenUsers {
		return errWrongScreen
	}
	if err := a.users.OpenEdit(id); err != nil {
		return err
	}
	a.renderUsers()
	return nil
}

func (a *App) Set(field, value string) error {
	if a.screen() != router.ScreenUsers {
		return errWrongScreen
	}
	return a.users.SetField(field, value)
}

func (a *App) Save(ctx context.Context) error {
	if a.screen() != router.ScreenUsers {
		return errWrongScreen
	}
	err := a.users.Save(ctx)
	if errors.Is(err, screens.ErrBusy) || errors.Is(err, screens.ErrModalClosed) {
		return err
	}
	a.renderUsers()
	return nil
}

func (a *App) Close() error {
	if a.screen() != router.ScreenUsers {
		return errWrongScreen
	}
	a.users.CloseModal()
	a.renderUsers()
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if a.screen() != router.ScreenUsers {
		return errWrongScreen
	}
	if err := a.users.Delete(ctx, id); errors.Is(err, screens.ErrBusy) {
		return err
	}
	a.renderUsers()
	return nil
}

// Show redraws the current screen.
func (a *App) Show(ctx context.Context) error {
	switch a.screen() {
	case router.ScreenSession:
		a.renderSession()
	case router.ScreenUsers:
		a.renderUsers()
	default:
		return fmt.Errorf("nothing to show at %s", a.path)
	}
	return nil
}

func (a *App) renderSession() {
	printlnFn(renderSession(a.session.View()))
}

func (a *App) renderUsers() {
	printlnFn(renderManager(a.users.View()))
}
