package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/sos_intake_service/internal/config"
	v1 "github.com/shenikar/sos_intake_service/internal/handler/http/v1"
	"github.com/shenikar/sos_intake_service/internal/notify"
	"github.com/shenikar/sos_intake_service/internal/repository"
	"github.com/shenikar/sos_intake_service/internal/scheduler"
	"github.com/shenikar/sos_intake_service/internal/service"
	"github.com/shenikar/sos_intake_service/internal/storage"
	"github.com/shenikar/sos_intake_service/pkg/logger"
	minioclient "github.com/shenikar/sos_intake_service/pkg/minio"
	"github.com/shenikar/sos_intake_service/pkg/postgres"
	redisclient "github.com/shenikar/sos_intake_service/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/sos_intake_service/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Prashiskshan SOS Intake API
// @version 1.0
// @description SOS incident intake and triage service for the Prashiskshan internship platform.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		cfg.MigrationsPath,
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConn)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Хранилище вложений; без ключей доступа сохраняются только метаданные
	var evidenceStore service.EvidenceStore
	if cfg.MinioAccessKey != "" {
		minioClient, err := minioclient.NewMinioClient(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		evidenceStore = storage.NewEvidenceStore(minioClient, cfg.MinioBucket, cfg.EvidenceURLTTL)
		log.Info("Successfully connected to MinIO")
	} else {
		log.Warn("MINIO_ACCESS_KEY is not set, evidence content will not be stored")
	}

	// Инициализация издателя уведомлений
	publisher := notify.NewRedisPublisher(redisClient)

	// Инициализация и запуск воркера уведомлений
	var mailer notify.Mailer
	if sg := notify.NewSendGridMailer(cfg); sg != nil {
		mailer = sg
	} else {
		log.Warn("SENDGRID_API_KEY is not set, confirmation emails are disabled")
	}
	notifyWorker := notify.NewWorker(redisClient, mailer, log, cfg)
	notifyWorker.Start(ctx)

	// Инициализация репозиториев
	caseRepo := repository.NewCaseRepository(dbpool, redisClient, cfg.CaseCacheTTL)

	// Инициализация сервисов
	caseService := service.NewCaseService(caseRepo, evidenceStore, publisher, log, cfg)

	// Контроль сроков реакции
	slaMonitor, err := scheduler.NewSLAMonitor(caseService, log, cfg.SLASweepSchedule)
	if err != nil {
		log.Fatalf("Failed to create SLA monitor: %v", err)
	}
	slaMonitor.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(caseService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadMemory
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := slaMonitor.Stop(shutdownCtx); err != nil {
		log.WithError(err).Warn("SLA monitor did not stop in time")
	}
	cancel()

	log.Info("Server gracefully stopped")
}
