package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ribeirowl/processador-giga/core/config"
	"github.com/ribeirowl/processador-giga/core/loader"
	"github.com/ribeirowl/processador-giga/core/logger"
	"github.com/ribeirowl/processador-giga/core/middleware/auth"
	"github.com/ribeirowl/processador-giga/core/middleware/rayid"
	"github.com/ribeirowl/processador-giga/core/reconcile"
	"github.com/ribeirowl/processador-giga/core/storage"
	"github.com/ribeirowl/processador-giga/feature/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/ribeirowl/processador-giga/docs/swagger"
)

// @title Processador de Estoque API
// @version 1.0
// @description Branch stock, transfer and purchase reports from uploaded spreadsheets.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the report server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		opts, err := cfg.Reconcile.Options()
		if err != nil {
			logg.Fatal("Invalid reconcile configuration", zap.Error(err))
		}

		// 3. Initialize Upload Archive
		archive, err := storage.NewArchive(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create upload archive", zap.Error(err))
		}
		if bucket, ok := archive.(*storage.BucketArchive); ok {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := bucket.Ensure(ctx)
			cancel()
			if err != nil {
				logg.Fatal("Failed to prepare upload bucket", zap.Error(err))
			}
		}
		logg.Info("Upload archive ready", zap.String("driver", cfg.Storage.Driver))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 5. Register Features
		sessions := reconcile.NewSessions(cfg.Reconcile.SessionTTL())
		mgr := loader.NewManager(logg)
		mgr.Register(reports.NewFeature(sessions, archive, opts, logg, cfg.Server.SessionCookie))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Panics become 500s instead of killing the process
		app.Use(recover.New())

		// 3. Request logging with the Ray ID attached
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 4. Public endpoints
		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Auth (no-op unless an API key is configured)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("join_scope", string(opts.Scope)))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
