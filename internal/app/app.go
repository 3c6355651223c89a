package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/RoomReserve/internal/catalog"
	"github.com/stpnv0/RoomReserve/internal/config"
	"github.com/stpnv0/RoomReserve/internal/handler"
	"github.com/stpnv0/RoomReserve/internal/middleware"
	"github.com/stpnv0/RoomReserve/internal/notification"
	"github.com/stpnv0/RoomReserve/internal/observer"
	"github.com/stpnv0/RoomReserve/internal/repository"
	"github.com/stpnv0/RoomReserve/internal/router"
	"github.com/stpnv0/RoomReserve/internal/scheduler"
	"github.com/stpnv0/RoomReserve/internal/service"
	"github.com/stpnv0/RoomReserve/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"RoomReserve",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	repo, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(repo); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

// initStorage picks the reservation backend. Postgres is the only one needing
// a connection and schema migrations; memory and file work standalone.
func (a *App) initStorage() (ports.ReservationRepo, error) {
	switch a.cfg.Storage.Type {
	case "memory":
		a.log.Info("using in-memory reservation storage")
		return repository.NewInMemoryRepository(), nil

	case "file":
		repo, err := repository.NewFileRepository(a.cfg.Storage.FilePath)
		if err != nil {
			return nil, fmt.Errorf("file storage: %w", err)
		}
		a.log.Info("using file reservation storage",
			logger.String("path", a.cfg.Storage.FilePath),
		)
		return repo, nil

	case "postgres":
		if err := a.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
		return repository.NewPostgresRepository(a.db), nil

	default:
		return nil, fmt.Errorf("unknown storage type %q", a.cfg.Storage.Type)
	}
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices(repo ports.ReservationRepo) error {
	rooms, err := catalog.DefaultRooms()
	if err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}
	roomCatalog, err := catalog.New(rooms...)
	if err != nil {
		return fmt.Errorf("init catalog: %w", err)
	}

	notifier, err := notification.New(a.cfg.Notifier, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	validator, err := service.NewReservationValidator(
		a.cfg.Validator.MinDuration,
		a.cfg.Validator.MaxDuration,
		a.cfg.Validator.BusinessStart,
		a.cfg.Validator.BusinessEnd,
		a.cfg.Validator.MaxAdvanceDays,
	)
	if err != nil {
		return fmt.Errorf("init validator: %w", err)
	}

	stats := observer.NewStatisticsObserver()
	audit := observer.NewAuditLogObserver()

	reservationService := service.NewReservationService(repo, notifier, validator, a.log, stats, audit)

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Retention.Interval,
		a.cfg.Retention.MaxAge,
		a.log,
	)

	h := handler.NewHandler(reservationService, roomCatalog, stats, audit)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
