package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/avoronin/cityride/internal/config"
	"github.com/avoronin/cityride/internal/gateway"
	"github.com/avoronin/cityride/internal/kvstore"
	"github.com/avoronin/cityride/internal/logging"
	"github.com/avoronin/cityride/internal/routes"
	"github.com/avoronin/cityride/internal/session"
	"github.com/avoronin/cityride/internal/theme"
	"github.com/avoronin/cityride/internal/tickets"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// App ties the stores together for the terminal client. One instance per
// process; the stores are injected by handle, not reached through globals.
type App struct {
	config   *config.Config
	log      logging.Logger
	sessions *session.Store
	prefs    *theme.Store
	ledger   *tickets.Ledger
	catalog  routes.Catalog
	reader   *bufio.Reader
	closeFn  func() error
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewTextLogger(os.Stderr)

	kv, closeFn, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "error initializing storage", "backend", cfg.StorageBackend, "error", err)
		return nil, err
	}

	gw := gateway.NewMock([]byte(cfg.TokenSecret), cfg.GatewayLatency, cfg.TokenValidity)

	sessions := session.NewStore(gw, kv, logger)
	sessions.Load(ctx)

	prefs := theme.NewStore(kv, logger, hostScheme(cfg))
	prefs.Load(ctx)

	return &App{
		config:   cfg,
		log:      logger,
		sessions: sessions,
		prefs:    prefs,
		ledger:   tickets.NewLedger(sessions, logger),
		catalog:  routes.Default(),
		reader:   bufio.NewReader(os.Stdin),
		closeFn:  closeFn,
	}, nil
}

// openStorage builds the key-value repository selected by the config.
// The returned closer releases the underlying connection, if any.
func openStorage(ctx context.Context, cfg *config.Config) (kvstore.Repository, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		repo, db, err := kvstore.InitSQLite(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return repo, db.Close, nil

	case config.BackendPostgres:
		repo, db, err := kvstore.InitPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return repo, db.Close, nil

	case config.BackendRedis:
		client, err := kvstore.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewRedisRepository(client), client.Close, nil

	case config.BackendMemory:
		return kvstore.NewMemoryRepository(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// hostScheme adapts the configured system color scheme into the theme
// store's host signal. A terminal has no OS signal to sample, so the value
// comes from configuration.
func hostScheme(cfg *config.Config) theme.SchemeFunc {
	if cfg.SystemScheme == string(theme.SchemeDark) {
		return func() theme.Scheme { return theme.SchemeDark }
	}
	return func() theme.Scheme { return theme.SchemeLight }
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}

func (a *App) getStatus() string {
	s := ""
	if u := a.sessions.Current(); u != nil {
		s = u.Email + " "
	}
	s = s + string(a.prefs.Mode())
	return fmt.Sprintf("(%s)", s)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closeFn(); err != nil {
			a.log.Warn(ctx, "error closing storage", "error", err)
		}
	}()

	fmt.Println("Welcome to cityride (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
