package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/pawelier/internal/auth"
	"github.com/rogerio-castellano/pawelier/internal/catalog"
	"github.com/rogerio-castellano/pawelier/internal/checkout"
	"github.com/rogerio-castellano/pawelier/internal/config"
	"github.com/rogerio-castellano/pawelier/internal/db"
	"github.com/rogerio-castellano/pawelier/internal/http/handlers"
	rl "github.com/rogerio-castellano/pawelier/internal/http/rate_limiter"
	"github.com/rogerio-castellano/pawelier/internal/http/router"
	"github.com/rogerio-castellano/pawelier/internal/logging"
	"github.com/rogerio-castellano/pawelier/internal/prefs"
	"github.com/rogerio-castellano/pawelier/internal/redissvc"
	"github.com/rogerio-castellano/pawelier/internal/repo"
	"github.com/rogerio-castellano/pawelier/internal/store"
	"github.com/sirupsen/logrus"
)

const tokenTTL = 24 * time.Hour

// @title Pawelier API
// @version 1.0
// @description REST API for the Pawelier pet accessory store: catalog, cart, favorites, checkout and order notifications.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}
	log := logging.New(cfg.LogLevel)
	if cfg.UsesDefaultJWTSecret() {
		log.Warn("JWT_SECRET not set, signing tokens with the built-in development key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var users repo.UserRepository = repo.NewInMemoryUserRepository()
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("could not connect to database")
		}
		defer database.Close()
		users = repo.NewPostgresUserRepository(database)
		log.Info("using postgres user repository")
	} else {
		log.Warn("DATABASE_URL not set, accounts are kept in memory")
	}

	var (
		prefStore prefs.Store      = prefs.NewMemoryStore()
		locker    checkout.Locker = checkout.NewMemoryLocker()
	)
	if cfg.RedisAddr != "" {
		redisService, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Fatal("could not connect to redis")
		}
		defer redisService.Close()
		prefStore = prefs.NewRedisStore(redisService.Rdb(), log)
		locker = checkout.NewRedisLocker(redisService.Rdb())
		log.WithField("addr", cfg.RedisAddr).Info("using redis for preferences and checkout locks")
	} else {
		log.Warn("REDIS_ADDR not set, preferences are kept in memory")
	}

	tokens := auth.NewTokens(cfg.JWTSecret, tokenTTL)
	checkoutSvc := checkout.NewService(checkout.Options{
		Pricing: checkout.NewPricing(cfg.TaxRate, cfg.ShippingFee, cfg.FreeShippingThreshold, cfg.Currency),
		Delay:   cfg.CheckoutDelay,
		LockTTL: cfg.CheckoutLockTTL,
		Locker:  locker,
		Logger:  log,
	})

	server := handlers.NewServer(handlers.Deps{
		Catalog:  catalog.New(log),
		Sessions: store.NewRegistry(),
		Checkout: checkoutSvc,
		Prefs:    prefStore,
		Users:    users,
		Tokens:   tokens,
		Logger:   log,
		Currency: cfg.Currency,
	})

	limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute)

	srv := newHTTPServer(ctx, cfg.Addr(), router.NewRouter(server, tokens, limiter, log))

	go func() {
		log.WithField("addr", srv.Addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

// newHTTPServer derives every request context from ctx, so open event
// streams end as soon as shutdown starts.
func newHTTPServer(ctx context.Context, addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}
