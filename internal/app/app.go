package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/config"
	"github.com/likhilliki/ATM-Simulator/internal/handlers"
	"github.com/likhilliki/ATM-Simulator/internal/pg"
	"github.com/likhilliki/ATM-Simulator/internal/repo"
	sessionrepo "github.com/likhilliki/ATM-Simulator/internal/repo/session-repo"
	"github.com/likhilliki/ATM-Simulator/internal/seed"
	"github.com/likhilliki/ATM-Simulator/internal/service"
	"github.com/likhilliki/ATM-Simulator/internal/service/sessionservice"
	"github.com/likhilliki/ATM-Simulator/internal/sweeper"
	"github.com/likhilliki/ATM-Simulator/pkg/auth"
	"github.com/likhilliki/ATM-Simulator/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	sweeper *sweeper.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.start(ctx, config.New())
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	repos, err := a.buildRepositories(ctx)
	if err != nil {
		return err
	}
	a.repo = repos

	sessions, err := a.buildSessionStore(ctx)
	if err != nil {
		return err
	}

	pins := &auth.HashService{}
	if cfg.SeedDemo {
		if err := seed.Demo(ctx, a.repo, pins, time.Now()); err != nil {
			zap.L().Error("demo seed failed", zap.Error(err))
			return fmt.Errorf("can't seed demo data: %w", err)
		}
	}

	cookies := auth.NewSessionCookie(auth.NewTokenService(cfg.SessionSecret), cfg.SessionTTL, cfg.CookieSecure)
	a.srv = service.New(a.repo, sessions, pins, cfg.SessionTTL)
	a.api = handlers.New(a.srv, cookies)
	a.sweeper = sweeper.New(a.srv.SessionService, cfg.CleanupInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startSweeper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	if !a.cfg.UsesDatabase() {
		zap.L().Info("DATABASE_URI not set, keeping accounts in memory")
		return repo.NewInMemory(), nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed", zap.Error(err))
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	a.closeOnDone(ctx, pool.Close)

	return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) buildSessionStore(ctx context.Context) (sessionservice.SessionStore, error) {
	if a.cfg.SessionStore != config.SessionStoreRedis {
		return sessionrepo.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		zap.L().Error("redis ping failed", zap.Error(err))
		return nil, fmt.Errorf("can't connect to redis: %w", err)
	}
	a.closeOnDone(ctx, func() { _ = client.Close() })

	zap.L().Info("sessions stored in redis", zap.String("addr", a.cfg.RedisAddr))
	return sessionrepo.NewRedisStore(client, a.cfg.SessionTTL), nil
}

func (a *Application) closeOnDone(ctx context.Context, closeFn func()) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		closeFn()
	}()
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server", zap.String("addr", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSweeper(ctx context.Context) {
	done := a.sweeper.Start(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-done
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error("application error", zap.Error(err))
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
