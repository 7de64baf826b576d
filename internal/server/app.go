// Package server initializes and runs the review service: configuration,
// database and migrations, the sealing encryptor and decryption gateway, and
// the gRPC endpoint with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avolkovx/privseal/internal/logging"
	"github.com/avolkovx/privseal/internal/server/config"
	"github.com/avolkovx/privseal/internal/server/events"
	"github.com/avolkovx/privseal/internal/server/repositories/repomanager"
	"github.com/avolkovx/privseal/internal/server/services"
	"github.com/avolkovx/privseal/internal/vault"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/avolkovx/privseal/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	registry   *services.RegistryService
	documents  *services.DocumentService
	clauses    *services.ClauseService
	analysis   *services.AnalysisService
	decryption *services.DecryptionService
	escrow     *services.EscrowService
	gateway    vault.Gateway
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	enc, err := vault.NewAESGCM(
		vault.DeriveKey([]byte(cfg.SealPassphrase), []byte(cfg.SealSalt)),
		[]byte(cfg.GatewayKey),
	)
	if err != nil {
		return nil, fmt.Errorf("encryptor init error: %w", err)
	}

	// An external gateway endpoint selects the HTTP gateway; without one the
	// in-process simulator serves development setups.
	var gateway vault.Gateway
	var sim *vault.SimGateway
	if cfg.GatewayEndpoint != "" {
		gateway = vault.NewHTTPGateway(cfg.GatewayEndpoint)
	} else {
		sim = vault.NewSimGateway(enc)
		gateway = sim
	}

	emitter := events.NewLogEmitter(logger)

	app := &App{
		config:    cfg,
		logger:    logger,
		db:        db,
		registry:  services.NewRegistryService(db, rm, cfg, emitter),
		documents: services.NewDocumentService(db, rm, cfg, enc, emitter),
		clauses:   services.NewClauseService(db, rm, enc, emitter),
		analysis:  services.NewAnalysisService(db, rm, enc, emitter),
		escrow:    services.NewEscrowService(db, rm, emitter),
		gateway:   gateway,
	}
	app.decryption = services.NewDecryptionService(db, rm, cfg, enc, gateway, emitter)

	if sim != nil {
		sim.SetHandler(app.decryption.HandleCallback)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.config.SecretKey, app.config.GatewayKey,
		app.registry, app.documents, app.clauses, app.analysis, app.decryption, app.escrow)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
