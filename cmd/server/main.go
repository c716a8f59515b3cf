package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viren1298/event-booking-system/internal/config"
	"github.com/viren1298/event-booking-system/internal/database"
	"github.com/viren1298/event-booking-system/internal/di"
	"github.com/viren1298/event-booking-system/internal/logger"
	"github.com/viren1298/event-booking-system/internal/metrics"
	"github.com/viren1298/event-booking-system/internal/middleware"
	appredis "github.com/viren1298/event-booking-system/internal/redis"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting event booking service",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	ctx := context.Background()

	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   time.Second,
	})
	if err != nil {
		appLog.Fatal("Database connection failed", zap.Error(err))
	}
	defer db.Close()
	appLog.Info("Database connected",
		zap.Int32("max_conns", cfg.Database.MaxConns),
		zap.Int32("min_conns", cfg.Database.MinConns),
	)

	// Redis is optional: without it the service runs uncached and drops
	// confirmation notifications.
	var redisClient *appredis.Client
	redisClient, err = appredis.NewClient(ctx, &appredis.Config{
		Host:          cfg.Redis.Host,
		Port:          cfg.Redis.Port,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
		DialTimeout:   cfg.Redis.DialTimeout,
		ReadTimeout:   cfg.Redis.ReadTimeout,
		WriteTimeout:  cfg.Redis.WriteTimeout,
		MaxRetries:    3,
		RetryInterval: time.Second,
	})
	if err != nil {
		appLog.Warn("Redis connection failed, continuing without cache", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLog.Info("Redis connected")
	}

	container := di.NewContainer(&di.ContainerConfig{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(metrics.Middleware())

	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth(&middleware.AuthConfig{
		JWTSecret:       cfg.JWT.Secret,
		AllowDevHeaders: cfg.IsDevelopment(),
	})

	v1 := router.Group("/api/v1")
	{
		events := v1.Group("/events")
		{
			events.GET("", container.EventHandler.ListEvents)
			events.GET("/:id", container.EventHandler.GetEvent)
			events.GET("/:id/tickets", container.EventHandler.GetEventTickets)
			events.POST("", auth, container.EventHandler.CreateEvent)
			events.PUT("/:id", auth, container.EventHandler.UpdateEvent)
			events.DELETE("/:id", auth, container.EventHandler.DeleteEvent)
		}

		tickets := v1.Group("/tickets")
		{
			tickets.GET("/:id", container.TicketHandler.GetTicket)
			tickets.POST("", auth, container.TicketHandler.CreateTicket)
			tickets.PUT("/:id", auth, container.TicketHandler.UpdateTicket)
			tickets.DELETE("/:id", auth, container.TicketHandler.DeleteTicket)
		}

		bookings := v1.Group("/bookings")
		bookings.Use(auth)
		{
			bookings.POST("", container.BookingHandler.CreateBooking)
			bookings.GET("", container.BookingHandler.ListBookings)
			bookings.GET("/:id", container.BookingHandler.GetBooking)
			bookings.POST("/:id/cancel", container.BookingHandler.CancelBooking)
			bookings.POST("/:id/settle", container.PaymentHandler.SettleBooking)
			bookings.GET("/:id/payment", container.PaymentHandler.GetBookingPayment)
		}

		payments := v1.Group("/payments")
		payments.Use(auth)
		{
			payments.GET("/:id", container.PaymentHandler.GetPayment)
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		appLog.Info("HTTP server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	appLog.Info("Server exited gracefully")
}
