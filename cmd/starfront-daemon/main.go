package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/andrescamacho/starfront-go/internal/adapters/logging"
	"github.com/andrescamacho/starfront-go/internal/adapters/metrics"
	"github.com/andrescamacho/starfront-go/internal/adapters/persistence"
	"github.com/andrescamacho/starfront-go/internal/adapters/spectator"
	"github.com/andrescamacho/starfront-go/internal/adapters/universe"
	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/application/setup"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	turnCommands "github.com/andrescamacho/starfront-go/internal/application/turn/commands"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
	"github.com/andrescamacho/starfront-go/internal/infrastructure/config"
	"github.com/andrescamacho/starfront-go/internal/infrastructure/database"
	"github.com/andrescamacho/starfront-go/internal/infrastructure/pidfile"
)

func main() {
	// Parse command-line flags
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	fmt.Println("Starfront Daemon v0.1.0")
	fmt.Println("=======================")

	// Load configuration
	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configFlag)

	// Acquire PID file lock to prevent multiple instances
	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)
	if err := pf.Acquire(); err != nil {
		log.Fatalf("Failed to acquire PID file lock: %v", err)
	}
	fmt.Println("PID file lock acquired")

	err := run(cfg)
	if releaseErr := pf.Release(); releaseErr != nil {
		log.Printf("Warning: failed to release PID file: %v", releaseErr)
	}
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// 1. Logger
	logger, err := logging.New(logging.Options{
		Level:         cfg.Logging.Level,
		Format:        cfg.Logging.Format,
		Output:        cfg.Logging.Output,
		FilePath:      cfg.Logging.FilePath,
		IncludeCaller: cfg.Logging.IncludeCaller,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// 2. Database
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	fmt.Println("Database connected")

	// 3. Universe and repositories
	uf, err := universe.LoadFile(cfg.Simulation.UniversePath)
	if err != nil {
		return fmt.Errorf("failed to load universe: %w", err)
	}
	sessionName := cfg.Simulation.SessionName
	shipRepo := persistence.NewGormShipSnapshotRepository(db)
	transactionRepo := persistence.NewGormTransactionRepository(db, sessionName)
	eventLog := persistence.NewEventLog(db, sessionName, logger)

	// 4. Outbound hooks: log, event table, spectators, metrics
	notifiers := world.MultiNotifier{logging.NewNotifier(logger), eventLog}
	observers := world.MultiObserver{logging.NewObserver(logger)}

	var hub *spectator.Hub
	if cfg.Spectator.Enabled {
		hub = spectator.NewHub(cfg.Spectator.ClientBuffer, logger)
		notifiers = append(notifiers, hub)
	}

	med := common.NewMediator()
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		simCollector := metrics.NewSimulationCollector()
		if err := simCollector.Register(); err != nil {
			return fmt.Errorf("failed to register simulation metrics: %w", err)
		}
		metrics.SetGlobalTurnRecorder(simCollector)
		observers = append(observers, simCollector)

		commandCollector := metrics.NewCommandMetricsCollector()
		if err := commandCollector.Register(); err != nil {
			return fmt.Errorf("failed to register command metrics: %w", err)
		}
		med.Use(metrics.PrometheusMiddleware(commandCollector))
		fmt.Println("Metrics enabled")
	}
	if hub != nil {
		med.Use(spectator.TurnFeed(hub))
	}

	// 5. World and session
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = common.WithLogger(ctx, logger)

	w, restored, err := setup.BuildWorld(ctx, uf, cfg.Simulation.Seed, shipRepo, sessionName,
		world.WithNotifier(notifiers),
		world.WithObserver(observers),
	)
	if err != nil {
		return fmt.Errorf("failed to build world: %w", err)
	}
	session := turn.NewSession(sessionName, w, turn.WithElectionInterval(cfg.Simulation.ElectionInterval))

	registry := setup.NewHandlerRegistry(session, transactionRepo, shipRepo, cfg.Simulation.SnapshotEvery)
	if err := registry.RegisterAll(med); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	logger.Log(common.LevelInfo, "Session ready", map[string]interface{}{
		"session":  sessionName,
		"restored": restored,
		"ships":    len(w.Ships()),
	})

	// 6. HTTP servers
	var servers []*http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
		servers = append(servers, newServer(fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port), mux))
	}
	if hub != nil {
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		servers = append(servers, newServer(cfg.Spectator.Address, mux))
	}

	g, gctx := errgroup.WithContext(ctx)

	if hub != nil {
		g.Go(func() error {
			hub.Run(gctx)
			return nil
		})
	}
	for _, srv := range servers {
		g.Go(func() error {
			logger.Log(common.LevelInfo, "HTTP server listening", map[string]interface{}{"addr": srv.Addr})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Daemon.ShutdownTimeout)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Log(common.LevelWarn, "HTTP server shutdown failed", map[string]interface{}{
					"addr":  srv.Addr,
					"error": err.Error(),
				})
			}
		}
		return nil
	})
	g.Go(func() error {
		// a finite run ends the daemon once it completes
		defer stop()
		resp, err := med.Send(gctx, &turnCommands.RunSimulationCommand{
			Turns:          cfg.Simulation.Turns,
			TurnsPerSecond: cfg.Simulation.TurnsPerSecond,
		})
		if err != nil {
			return err
		}
		result := resp.(*turnCommands.RunSimulationResponse)
		logger.Log(common.LevelInfo, "Simulation stopped", map[string]interface{}{
			"turns":     result.TurnsRun,
			"destroyed": result.Destroyed,
			"battles":   result.Battles,
			"cancelled": result.Cancelled,
		})
		return nil
	})

	fmt.Println("\n✓ Daemon is running")
	fmt.Println("Press Ctrl+C to stop")

	runErr := g.Wait()

	// Final snapshot, even after an interrupted run
	saveCtx, cancel := context.WithTimeout(common.WithLogger(context.Background(), logger), cfg.Daemon.ShutdownTimeout)
	defer cancel()
	if _, err := med.Send(saveCtx, &turnCommands.SaveSnapshotCommand{}); err != nil {
		return errors.Join(runErr, fmt.Errorf("failed to save snapshot: %w", err))
	}

	fmt.Println("\nDaemon stopped")
	return runErr
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
