package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/farm-portal/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Handler delivers one notification. Returning an error requeues the message.
type Handler func(ctx context.Context, msg NotificationMessage) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler Handler
}

func NewConsumer(host string, port int, user, password string, handler Handler) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel, handler: handler}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		notificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.dispatch(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) dispatch(ctx context.Context, msg amqp091.Delivery) {
	requeue, err := Dispatch(ctx, msg.Body, c.handler)
	if err == nil {
		_ = msg.Ack(false)
		return
	}
	if requeue {
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}

// Dispatch decodes body and runs handler. Undecodable messages are dropped;
// handler failures ask for a requeue.
func Dispatch(ctx context.Context, body []byte, handler Handler) (requeue bool, err error) {
	var n NotificationMessage
	if err := json.Unmarshal(body, &n); err != nil {
		logger.Error("[Consumer] err unmarshal notification", zap.String("error", err.Error()))
		return false, err
	}

	if err := handler(ctx, n); err != nil {
		logger.Warn("[Consumer] err deliver notification",
			zap.String("kind", string(n.Kind)),
			zap.String("user_id", n.UserID),
			zap.String("error", err.Error()))
		return true, err
	}
	return false, nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
