package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	config "tasklight.app/tasklight/internal/configs"
	httpapi "tasklight.app/tasklight/internal/http"
	repository "tasklight.app/tasklight/internal/repositories"
	"tasklight.app/tasklight/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the tasklight HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		authService := services.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)
		taskService := services.NewTaskService(taskRepo)
		quoteService := services.NewQuoteService()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.Use(echomiddleware.Logger())
		e.Use(echomiddleware.Recover())

		httpapi.Register(
			e,
			httpapi.NewAuthHandler(authService),
			httpapi.NewTaskHandler(taskService),
			httpapi.NewQuoteHandler(quoteService),
			authService,
		)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
