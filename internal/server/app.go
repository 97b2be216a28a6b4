// Package server wires the tokengate server together: it opens the
// database, applies migrations, builds the services and runs the gRPC and
// metrics endpoints until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/tokengate/internal/logging"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/config"
	"github.com/dmitrijs2005/tokengate/internal/server/metrics"
	"github.com/dmitrijs2005/tokengate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tokengate/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/tokengate/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	grpcServer    *gs.GRPCServer
	metricsServer *metrics.Server
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	mode, err := auth.ParseMode(c.AuthMode)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	signer := auth.NewTokenSigner(c.SecretKey, c.TokenIssuer, c.TokenAudience, c.TokenValidityDuration)
	issuer, err := auth.NewIssuer(mode, signer, rm.Sessions(db))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	hasher := auth.BcryptHasher{}
	policy := auth.DefaultPasswordPolicy
	m := metrics.New()

	as := services.NewAuthService(db, rm, issuer, hasher, c, logger, m)
	acs := services.NewAccountService(db, rm, hasher, policy, logger)
	rs := services.NewRegistrationService(db, rm, issuer, hasher, policy, c, logger)
	al := services.NewAccessLedger(db, rm, logger, m)

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		grpcServer:    gs.NewGRPCServer(c.EndpointAddrGRPC, logger, as, acs, rs, al, signer),
		metricsServer: metrics.NewServer(c.MetricsAddr, m, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// runner is anything Run can supervise.
type runner interface {
	Run(ctx context.Context) error
}

func (app *App) start(ctx context.Context, cancelFunc context.CancelFunc, name string, r runner) {
	if err := r.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

// Run blocks until a signal arrives or one of the servers fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "mode", app.config.AuthMode)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "grpc", app.grpcServer)
	}()
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "metrics", app.metricsServer)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
