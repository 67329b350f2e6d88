package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"

	"gamestore/internal/logging"
)

const catalogQueue = "catalog_events"

// Event types published after catalog writes.
const (
	GameCreated = "game.created"
	GameUpdated = "game.updated"
	GameDeleted = "game.deleted"
)

// GameEvent is the message published to the catalog queue after a
// successful write.
type GameEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	GameID     uint      `json:"gameId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewGameEvent builds an event envelope with a fresh id.
func NewGameEvent(eventType string, gameID uint) GameEvent {
	return GameEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		GameID:     gameID,
		OccurredAt: time.Now().UTC(),
	}
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel, and declares the durable
// catalog queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		catalogQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", catalogQueue, err)
	}

	logging.Log.Infof("RabbitMQ client connected and %s declared", catalogQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ client: %v", errs)
	}
	return nil
}

// PublishGameEvent publishes a catalog event to the catalog queue as a
// persistent JSON message.
func (c *Client) PublishGameEvent(event GameEvent) error {
	if c == nil || c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal game event: %w", err)
	}

	err = c.channel.Publish(
		"",           // exchange: default
		catalogQueue, // routing key: the queue name
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish game event: %w", err)
	}

	logging.Log.Debugf("published catalog event: %s", body)
	return nil
}

// ConsumeGameEvents registers a consumer on the catalog queue and processes
// deliveries with messageHandler in a background goroutine. Messages are
// acked on success and requeued on handler error.
func (c *Client) ConsumeGameEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c == nil || c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := c.channel.QueueDeclare(
		catalogQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name,
		"",    // consumer tag
		false, // auto-ack off, ack manually after handling
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if handlerErr := messageHandler(msg); handlerErr != nil {
				logging.Log.WithError(handlerErr).Errorf("failed to process catalog event %d", msg.DeliveryTag)
				if nackErr := msg.Nack(false, true); nackErr != nil {
					logging.Log.WithError(nackErr).Errorf("failed to nack catalog event %d", msg.DeliveryTag)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				logging.Log.WithError(ackErr).Errorf("failed to ack catalog event %d", msg.DeliveryTag)
			}
		}
	}()

	return nil
}
