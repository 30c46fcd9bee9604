package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Vengatesh521/student-teacher-booking/internal/app"
	"github.com/Vengatesh521/student-teacher-booking/internal/auth"
	"github.com/Vengatesh521/student-teacher-booking/internal/cache"
	"github.com/Vengatesh521/student-teacher-booking/internal/config"
	controller "github.com/Vengatesh521/student-teacher-booking/internal/controller/http"
	"github.com/Vengatesh521/student-teacher-booking/internal/realtime"
	"github.com/Vengatesh521/student-teacher-booking/internal/repository"
	"github.com/Vengatesh521/student-teacher-booking/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	broker := realtime.NewBroker()

	profileCache := cache.NewProfileCache(cfg.RedisAddr, logger)
	defer profileCache.Close()

	profileRepo := repository.NewProfileRepository(pool)
	apptRepo := repository.NewAppointmentRepository(pool)
	msgRepo := repository.NewMessageRepository(pool)

	identitySvc := service.NewIdentityService(profileRepo, profileCache, broker, logger)
	directorySvc := service.NewDirectoryService(profileRepo, broker, logger)
	appointmentSvc := service.NewAppointmentService(apptRepo, profileRepo, broker, logger)
	messageSvc := service.NewMessageService(msgRepo, profileRepo, broker, logger)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTLHours)

	handler := controller.NewHandler(identitySvc, directorySvc, appointmentSvc, messageSvc, jwtService, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	controller.SetupRoutes(engine, handler)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	go func() {
		logger.Info("Starting booking portal",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
