package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	notificationExchange   = "notification_exchange"
	notificationQueue      = "notification_queue"
	notificationRoutingKey = "notification"
)

type NotificationKind string

const (
	NotificationOTPVerification NotificationKind = "otp_verification"
	NotificationPasswordReset   NotificationKind = "password_reset"
	NotificationWelcome         NotificationKind = "welcome"
)

// NotificationMessage is one email/SMS the notifier should deliver.
type NotificationMessage struct {
	Kind      NotificationKind  `json:"kind"`
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NotificationPublisher is what the application layer depends on.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, msg NotificationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		notificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		notificationQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		notificationQueue,      // queue name
		notificationRoutingKey, // routing key
		notificationExchange,   // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishNotification(ctx context.Context, msg NotificationMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		notificationExchange,   // exchange
		notificationRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.CreatedAt,
			Type:         string(msg.Kind),
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
