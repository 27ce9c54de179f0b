package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"

	"blogsphere/internal/config"
	"blogsphere/internal/handler"
	"blogsphere/internal/middleware"
	"blogsphere/internal/pkg/i18n"
	"blogsphere/internal/pkg/logger"
	"blogsphere/internal/repository"
	"blogsphere/internal/service"
)

func serveCmd() *cobra.Command {
	var runMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Example: heredoc.Doc(`
			$ blogsphere serve
			$ PORT=9000 blogsphere serve --migrate
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), runMigrations)
		},
	}

	cmd.Flags().BoolVar(&runMigrations, "migrate", false, "Apply pending migrations before serving")

	return cmd
}

func serve(ctx context.Context, runMigrations bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	i18n.SetFallback(cfg.DefaultLocale)
	if err := i18n.LoadTranslations(cfg.LocalesPath); err != nil {
		log.Warn(ctx, "failed to load translations", "path", cfg.LocalesPath, "error", err)
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if runMigrations {
		if err := config.RunMigrations(db, config.MigrateUp); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	redis, err := config.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Warn(ctx, "redis unavailable, comment pages will not be cached", "error", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	minioClient, err := config.NewMinIOClient(ctx, cfg, log)
	if err != nil {
		log.Warn(ctx, "minio unavailable, upload urls will not be signed", "error", err)
		minioClient = nil
	}

	repos := repository.NewRepositories(db)
	services, err := service.NewServices(repos, redis, minioClient, cfg, log)
	if err != nil {
		return err
	}
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(log),
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: log.Writer(),
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestInfo())

	handler.SetupRoutes(app, handlers, services.Auth)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info(ctx, "shutting down server")
		_ = app.Shutdown()
	}()

	log.Info(ctx, "server starting", "port", cfg.Port, "environment", cfg.Environment)
	return app.Listen(":" + cfg.Port)
}
