package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/config"
	"github.com/earnova/earnova-bot/internal/pg"
	"github.com/earnova/earnova-bot/internal/repo"
	"github.com/earnova/earnova-bot/internal/service"
	"github.com/earnova/earnova-bot/internal/sweep"
	"github.com/earnova/earnova-bot/internal/telegram"
	"github.com/earnova/earnova-bot/pkg/logger"
	"github.com/earnova/earnova-bot/pkg/secret"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	bot        *telegram.Bot
	dispatcher *telegram.Dispatcher
	srv        *service.Services
	repo       *repo.Repositories
	scheduler  *sweep.Scheduler

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
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	cipher, err := secret.New(cfg.EncryptionKey)
	if err != nil {
		return fmt.Errorf("can't build secret store: %w", err)
	}

	bot, err := telegram.NewBot(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("can't connect to telegram: %w", err)
	}

	a.cfg = cfg
	a.bot = bot
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, a.repo, cipher, bot)
	a.dispatcher = telegram.NewDispatcher(cfg, bot,
		a.srv.UserService, a.srv.PoolService, a.srv.ProofService, a.srv.GateService, a.srv.AdminService)
	a.scheduler = sweep.New(cfg, a.repo.ProofRepo, a.repo.UserRepo, a.repo.ReferralRepo, a.repo.BroadcastRepo, bot)

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startDispatcher(ctx)
	a.scheduler.Start(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
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
		return nil, err
	}
	return dbpool, nil
}

// startHTTPServer serves the health probe and prometheus metrics.
func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})
	router.Handle("/metrics", promhttp.Handler())

	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startDispatcher(ctx context.Context) {
	updates := a.bot.Updates()
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.dispatcher.Run(ctx, updates)
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
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
