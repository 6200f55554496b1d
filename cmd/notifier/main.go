package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/farm-portal/cmd/config"
	"github.com/muhammadheryan/farm-portal/thirdparty/rabbitmq"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	"go.uber.org/zap"
)

// deliver stands in for the SMS and email gateways. Codes are only logged
// outside production.
func deliver(cfg *config.Config) rabbitmq.Handler {
	return func(ctx context.Context, msg rabbitmq.NotificationMessage) error {
		fields := []zap.Field{
			zap.String("kind", string(msg.Kind)),
			zap.String("user_id", msg.UserID),
			zap.String("email", msg.Email),
			zap.String("phone", msg.Phone),
		}
		if !cfg.IsProduction() {
			for k, v := range msg.Data {
				fields = append(fields, zap.String(k, v))
			}
		}
		logger.Info("notification delivered", fields...)
		return nil
	}
}

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, deliver(cfg))
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Notifier running")

	<-ctx.Done()
	logger.Info("Shutting down notifier")
}
