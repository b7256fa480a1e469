// @title Question Paper Builder API
// @version 1.0
// @description Build an exam paper from syllabus topics: seed questions from templates, generate more with AI, edit, finalize, print and copy.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "question-paper/cmd/api/docs"
	"question-paper/internal/adapter"
	"question-paper/internal/adapter/quizgen"
	"question-paper/internal/cache"
	"question-paper/internal/config"
	"question-paper/internal/domain"
	"question-paper/internal/generation"
	"question-paper/internal/handler"
	"question-paper/internal/logger"
	"question-paper/internal/middleware"
	"question-paper/internal/paper"
	"question-paper/internal/render"
	"question-paper/internal/session"
	"question-paper/internal/syllabus"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	sweepInterval   = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := syllabus.Default()
	provider := quizgen.NewFromConfig(cfg.Generation, appLogger)

	sessionOpts := []session.Option{
		session.WithTTL(cfg.Session.TTL),
		session.WithLogger(appLogger),
	}
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, sessions are kept in memory only", zap.Error(err))
		} else {
			defer redisClient.Close()
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
			sessionOpts = append(sessionOpts, session.WithCache(adapter.NewRedisCacheAdapter(redisClient)))
		}
	}

	sessions := session.NewManager(func() *paper.Workspace {
		return paper.NewWorkspace(catalog, generation.NewClient(provider, appLogger), paper.WithLogger(appLogger))
	}, sessionOpts...)

	renderer, err := render.NewRenderer(domain.PaperMetadata{
		Title:    cfg.Paper.Title,
		Subtitle: cfg.Paper.Subtitle,
		Duration: cfg.Paper.Duration,
	}, cfg.Paper.StylesheetURL)
	if err != nil {
		appLogger.Fatal("Failed to parse templates", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app,
		middleware.Session(sessions, cfg.Session.TTL),
		handler.NewPageHandler(catalog, renderer, sessions, cfg.Session.TTL),
		handler.NewAPIHandler(catalog, renderer, sessions, cfg.Session.TTL),
		middleware.NewValidationMiddleware(),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		return sessions.Run(gctx, sweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
