package cli

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/andrescamacho/starfront-go/internal/adapters/logging"
	"github.com/andrescamacho/starfront-go/internal/adapters/persistence"
	"github.com/andrescamacho/starfront-go/internal/adapters/universe"
	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/application/setup"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
	"github.com/andrescamacho/starfront-go/internal/infrastructure/config"
	"github.com/andrescamacho/starfront-go/internal/infrastructure/database"
)

// environment is everything a command needs to drive one session
type environment struct {
	cfg      *config.Config
	db       *gorm.DB
	universe *universe.File
	session  *turn.Session
	mediator common.Mediator
	events   *persistence.EventLog
	notes    *world.RecordingNotifier
	logger   *logging.SlogLogger
	restored bool
}

// loadConfig loads the config file named by --config and applies --session
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if sessionName != "" {
		cfg.Simulation.SessionName = sessionName
	}
	return cfg, nil
}

// openEnvironment connects to the database and builds the session world,
// restoring the latest snapshot when one exists
func openEnvironment(ctx context.Context, cfg *config.Config) (*environment, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := logging.NewWithWriter(os.Stderr, logging.Options{Level: level, Format: "text"})

	uf, err := universe.LoadFile(cfg.Simulation.UniversePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load universe: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	name := cfg.Simulation.SessionName
	shipRepo := persistence.NewGormShipSnapshotRepository(db)
	transactionRepo := persistence.NewGormTransactionRepository(db, name)
	events := persistence.NewEventLog(db, name, logger)
	notes := &world.RecordingNotifier{}

	w, restored, err := setup.BuildWorld(ctx, uf, cfg.Simulation.Seed, shipRepo, name,
		world.WithNotifier(world.MultiNotifier{events, notes}),
		world.WithObserver(logging.NewObserver(logger)),
	)
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	session := turn.NewSession(name, w, turn.WithElectionInterval(cfg.Simulation.ElectionInterval))
	med := common.NewMediator()
	registry := setup.NewHandlerRegistry(session, transactionRepo, shipRepo, cfg.Simulation.SnapshotEvery)
	if err := registry.RegisterAll(med); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return &environment{
		cfg:      cfg,
		db:       db,
		universe: uf,
		session:  session,
		mediator: med,
		events:   events,
		notes:    notes,
		logger:   logger,
		restored: restored,
	}, nil
}

// send dispatches request with the environment's logger attached
func (e *environment) send(ctx context.Context, request common.Request) (common.Response, error) {
	return e.mediator.Send(common.WithLogger(ctx, e.logger), request)
}

func (e *environment) Close() {
	_ = database.Close(e.db)
}
