package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const DefaultCheckoutQueue = "booking.checkout"

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes checkout messages to a durable queue on the
// default exchange. One channel is shared, so publishes are serialized.
type AMQPPublisher struct {
	mu    sync.Mutex
	conn  io.Closer
	ch    amqpChannel
	queue string
	log   logrus.FieldLogger
}

func NewAMQPPublisher(url, queue string, log logrus.FieldLogger) (*AMQPPublisher, error) {
	if queue == "" {
		queue = DefaultCheckoutQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, queue: queue, log: log}, nil
}

func (p *AMQPPublisher) PublishCheckout(ctx context.Context, msg CheckoutMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal checkout: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.Reference,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		p.log.WithError(err).WithField("reference", msg.Reference).Error("checkout publish failed")
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	p.log.WithFields(logrus.Fields{
		"reference": msg.Reference,
		"queue":     p.queue,
	}).Info("checkout published")
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.ch.Close()
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

// LogPublisher is used when no broker is configured.
type LogPublisher struct {
	log logrus.FieldLogger
}

func NewLogPublisher(log logrus.FieldLogger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishCheckout(_ context.Context, msg CheckoutMessage) error {
	p.log.WithFields(logrus.Fields{
		"reference": msg.Reference,
		"room_id":   msg.RoomID,
		"check_in":  msg.CheckIn,
		"check_out": msg.CheckOut,
		"nights":    msg.TotalNights,
		"total":     msg.TotalPrice,
		"user":      msg.UserName,
	}).Info("checkout handed off")
	return nil
}
