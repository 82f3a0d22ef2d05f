package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/postview/internal/client/api"
	"github.com/dmitrijs2005/postview/internal/client/config"
	"github.com/dmitrijs2005/postview/internal/client/repositories/kv"
	"github.com/dmitrijs2005/postview/internal/client/services"
	"github.com/dmitrijs2005/postview/internal/client/storage"
	"github.com/dmitrijs2005/postview/internal/client/token"
	"github.com/dmitrijs2005/postview/internal/logging"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    storage.Store
	codec    *token.Codec
	session  *services.SessionService
	theme    *services.ThemeService
	posts    *services.PostsService
	reader   *bufio.Reader
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewApp opens the configured store and builds the services on top of it.
// Logs go to stderr, tagged with a per-run id.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel, c.LogFormat).With("run_id", uuid.NewString())

	store, err := storage.Open(ctx, storage.Options{
		Backend:    storage.Backend(c.StorageBackend),
		SQLitePath: c.StoragePath,
		Redis: kv.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		},
	})
	if err != nil {
		logger.Error(ctx, "error opening storage", "backend", c.StorageBackend, "err", err)
		return nil, err
	}

	client := api.NewClient(c.APIBaseURL, c.RequestTimeout)
	return newApp(c, logger, store, client, time.Now, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, store storage.Store, postsAPI services.PostsAPI,
	now func() time.Time, in io.Reader, out io.Writer) *App {
	codec := token.NewCodec(now)

	a := &App{
		config:   c,
		logger:   logger,
		store:    store,
		codec:    codec,
		session:  services.NewSessionService(store, codec, logger),
		theme:    services.NewThemeService(store, logger),
		posts:    services.NewPostsService(postsAPI, logger),
		reader:   bufio.NewReader(in),
		out:      out,
		renderer: lipgloss.NewRenderer(out),
	}

	a.session.Subscribe(func(st services.SessionState) {
		a.logger.Debug(context.Background(), "session state changed", "state", fmt.Sprintf("%T", st))
	})
	a.theme.Subscribe(func(st services.ThemeState) {
		a.logger.Debug(context.Background(), "theme state changed", "theme", st.Theme, "loading", st.IsLoading)
	})

	return a
}

// Run restores persisted state, then serves the REPL until the user exits
// or ctx is cancelled. The store is closed on return.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "error closing storage", "err", err)
		}
	}()

	a.Start(ctx)
	a.Root(ctx)
}

// Start loads the theme and restores the session concurrently.
func (a *App) Start(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.theme.Load(gctx)
		return nil
	})
	g.Go(func() error {
		a.session.Restore(gctx)
		return nil
	})
	_ = g.Wait()
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
