package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/begzodnazarov/mebelhub-backend/api/routes"
	"github.com/begzodnazarov/mebelhub-backend/internal/auth"
	"github.com/begzodnazarov/mebelhub-backend/internal/cart"
	"github.com/begzodnazarov/mebelhub-backend/internal/categories"
	"github.com/begzodnazarov/mebelhub-backend/internal/checkout"
	"github.com/begzodnazarov/mebelhub-backend/internal/content"
	"github.com/begzodnazarov/mebelhub-backend/internal/currency"
	"github.com/begzodnazarov/mebelhub-backend/internal/messages"
	"github.com/begzodnazarov/mebelhub-backend/internal/orders"
	"github.com/begzodnazarov/mebelhub-backend/internal/products"
	"github.com/begzodnazarov/mebelhub-backend/internal/reviews"
	"github.com/begzodnazarov/mebelhub-backend/internal/settings"
	"github.com/begzodnazarov/mebelhub-backend/pkg/auth/session"
	"github.com/begzodnazarov/mebelhub-backend/pkg/config"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
	"github.com/begzodnazarov/mebelhub-backend/pkg/metrics"
	"github.com/begzodnazarov/mebelhub-backend/pkg/migrate"
	"github.com/begzodnazarov/mebelhub-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := multierr.Append(dbClient.Close(), redisClient.Close()); err != nil {
			logg.Error(context.Background(), "error closing clients", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gdb := dbClient.DB()

	settingsService, err := settings.NewService(settings.NewRepository(gdb))
	if err != nil {
		fatal(logg, "settings service", err)
	}
	rates := currency.NewResolver(settingsService, cfg.Currency.CacheTTL, logg)

	authService, err := auth.NewService(auth.ServiceParams{
		AdminRepo:      auth.NewRepository(gdb),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		fatal(logg, "auth service", err)
	}

	productRepo := products.NewRepository(gdb)
	productService, err := products.NewService(productRepo, rates)
	if err != nil {
		fatal(logg, "product service", err)
	}

	categoryService, err := categories.NewService(categories.NewRepository(gdb))
	if err != nil {
		fatal(logg, "category service", err)
	}

	cartPersister, err := cart.NewRedisPersister(redisClient, cfg.Cart.TTL)
	if err != nil {
		fatal(logg, "cart persister", err)
	}
	cartService, err := cart.NewService(cartPersister, productRepo, rates, logg)
	if err != nil {
		fatal(logg, "cart service", err)
	}

	orderService, err := orders.NewService(orders.NewRepository(gdb), rates, logg)
	if err != nil {
		fatal(logg, "order service", err)
	}

	checkoutService, err := checkout.NewService(cartService, orderService, logg)
	if err != nil {
		fatal(logg, "checkout service", err)
	}

	contentService, err := content.NewService(content.NewRepository(gdb))
	if err != nil {
		fatal(logg, "content service", err)
	}

	reviewService, err := reviews.NewService(reviews.NewRepository(gdb))
	if err != nil {
		fatal(logg, "review service", err)
	}

	messageService, err := messages.NewService(messages.NewRepository(gdb))
	if err != nil {
		fatal(logg, "message service", err)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	handler := routes.NewRouter(cfg, logg, dbClient, redisClient, sessionManager, httpMetrics, rates, routes.Services{
		Auth:       authService,
		Products:   productService,
		Categories: categoryService,
		Cart:       cartService,
		Checkout:   checkoutService,
		Orders:     orderService,
		Content:    contentService,
		Reviews:    reviewService,
		Messages:   messageService,
		Settings:   settingsService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error(ctx, "graceful shutdown failed", err)
	}
}

func fatal(logg *logger.Logger, what string, err error) {
	logg.Error(context.Background(), "failed to create "+what, err)
	os.Exit(1)
}
