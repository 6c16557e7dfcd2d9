package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"clinic_availability_go/config"
	"clinic_availability_go/db"
	"clinic_availability_go/handlers"
	"clinic_availability_go/logger"
	"clinic_availability_go/middleware"
	"clinic_availability_go/models"
	"clinic_availability_go/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.Environment, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Initialize database
	if err := db.Initialize(db.Options{
		DBPath:         cfg.DBPath,
		TursoURL:       cfg.TursoDatabaseURL,
		TursoAuthToken: cfg.TursoAuthToken,
		Environment:    cfg.Environment,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if cfg.SeedSampleData {
		if err := services.SeedSampleData(db.DB, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed sample data")
		}
	}

	if err := services.InitAvailability(db.DB, services.OptionsFromConfig(cfg), log); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize availability")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RPS:     cfg.RateLimitRPS,
		Burst:   cfg.RateLimitBurst,
		Message: "Rate limit exceeded. Please slow down your requests.",
	})
	defer limiter.Stop()

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(log))
	e.Use(middleware.Recovery(log))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	api.Use(limiter.Middleware())
	registerRoutes(api)

	// Start server
	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("server starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func registerRoutes(api *echo.Group) {
	api.GET("/leave-types", handlers.GetLeaveTypesHandler)
	api.POST("/holidays", handlers.CreateHolidayHandler)
	api.POST("/holidays/:date/exemptions", handlers.AddHolidayExemptionHandler)
	api.POST("/appointments/:appointmentId/cancel", handlers.CancelAppointmentHandler)

	practitioners := api.Group("/practitioners")
	{
		practitioners.GET("", handlers.ListPractitionersHandler)
		practitioners.POST("", handlers.CreatePractitionerHandler)
		practitioners.GET("/:id", handlers.GetPractitionerHandler)
		practitioners.PUT("/:id/working-hours", handlers.UpdateWorkingHoursHandler)

		practitioners.GET("/:id/available-slots/:date", handlers.GetAvailableSlotsHandler)
		practitioners.GET("/:id/availability/export", handlers.ExportAvailabilityHandler)

		practitioners.GET("/:id/appointments", handlers.GetAppointmentsHandler)
		practitioners.POST("/:id/appointments", handlers.CreateAppointmentHandler)

		practitioners.GET("/:id/daily-breaks", handlers.GetDailyBreaksHandler)
		practitioners.POST("/:id/daily-breaks", handlers.CreateDailyBreakHandler)
		practitioners.POST("/:id/exception-breaks", handlers.CreateExceptionBreakHandler)
		practitioners.POST("/:id/leaves", handlers.CreateLeaveHandler)
		practitioners.POST("/:id/holidays", handlers.CreatePractitionerHolidayHandler)
		practitioners.POST("/:id/weekly-offs", handlers.CreateWeeklyOffHandler)
		practitioners.POST("/:id/weekly-off-exceptions", handlers.CreateWeeklyOffExceptionHandler)
	}
}
