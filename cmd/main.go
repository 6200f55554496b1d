package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/application"
	animalapp "github.com/muhammadheryan/farm-portal/application/animal"
	userapp "github.com/muhammadheryan/farm-portal/application/user"
	"github.com/muhammadheryan/farm-portal/cmd/config"
	redisclient "github.com/muhammadheryan/farm-portal/cmd/redis"
	_ "github.com/muhammadheryan/farm-portal/docs"
	animalRepo "github.com/muhammadheryan/farm-portal/repository/animal"
	healthRecordRepo "github.com/muhammadheryan/farm-portal/repository/healthrecord"
	redisRepo "github.com/muhammadheryan/farm-portal/repository/redis"
	txRepo "github.com/muhammadheryan/farm-portal/repository/tx"
	userRepo "github.com/muhammadheryan/farm-portal/repository/user"
	"github.com/muhammadheryan/farm-portal/thirdparty/rabbitmq"
	"github.com/muhammadheryan/farm-portal/transport"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	"github.com/muhammadheryan/farm-portal/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title FARM PORTAL API
// @version 1.0
// @description Livestock, health record and account management API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	// notifications are best effort, the API runs without a broker
	var publisher rabbitmq.NotificationPublisher
	amqpPublisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, notifications disabled", zap.Error(err))
	} else {
		publisher = amqpPublisher
		defer amqpPublisher.Close()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Initialize repositories
	RedisRepo := redisRepo.NewRepository(redisClient)
	deps := &application.Dependencies{
		Config:           cfg,
		TxRepo:           txRepo.NewTxRepository(db),
		UserRepo:         userRepo.NewUserRepository(db),
		AnimalRepo:       animalRepo.NewAnimalRepository(db),
		HealthRecordRepo: healthRecordRepo.NewHealthRecordRepository(db),
		RedisRepo:        RedisRepo,
		Publisher:        publisher,
		Metrics:          m,
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(deps)
	AnimalApp := animalapp.NewAnimalApp(deps)

	httpTransport := transport.NewTransport(cfg, UserApp, AnimalApp, RedisRepo, m)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
