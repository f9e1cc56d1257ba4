package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/auth"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/catalog"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/feedback"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/orders"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/products"
	"github.com/bhojansetu/bhojan-setu-api/internal/changefeed"
	"github.com/bhojansetu/bhojan-setu-api/internal/infrastructure/postgres"
	"github.com/bhojansetu/bhojan-setu-api/internal/infrastructure/redisfeed"
	"github.com/bhojansetu/bhojan-setu-api/internal/infrastructure/storage"
	httpRouter "github.com/bhojansetu/bhojan-setu-api/internal/interfaces/http"
	"github.com/bhojansetu/bhojan-setu-api/pkg/config"
	"github.com/bhojansetu/bhojan-setu-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisfeed.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to Redis")
	}
	defer rdb.Close()

	imageStore, err := storage.OpenImageStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("open image bucket")
	}
	defer imageStore.Close()

	// Change feed: publish to Redis, listen and fan out to SSE subscribers.
	hub := changefeed.NewHub()
	feed := redisfeed.NewPublisher(rdb, log)
	listener := redisfeed.NewListener(rdb, hub, log)
	listenerCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()
	go func() {
		if err := listener.Run(listenerCtx); err != nil && listenerCtx.Err() == nil {
			log.Error().Err(err).Msg("change-feed listener stopped")
		}
	}()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, profileRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := products.NewUseCase(productRepo, feed)
	catalogUC := catalog.NewUseCase(productRepo, profileRepo)
	orderUC := orders.NewUseCase(txRunner, orderRepo, productRepo, profileRepo, feed)
	feedbackUC := feedback.NewUseCase(feedbackRepo, productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bhojan Setu API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		CatalogUC:  catalogUC,
		OrderUC:    orderUC,
		FeedbackUC: feedbackUC,
		Hub:        hub,
		ImageStore: imageStore,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")
	stopListener()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
