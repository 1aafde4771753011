package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"user_backend/internal/feature/account/usecase"
)

// EventTypeUserRegistered identifies the registration event.
const EventTypeUserRegistered = "user_registered"

// UserRegisteredEvent is the JSON payload published when a user registers.
// Consumers in other services depend on this shape.
type UserRegisteredEvent struct {
	EventType        string `json:"event_type"`
	UserEmail        string `json:"user_email"`
	RegistrationTime string `json:"registration_time"`
}

// RedisPublisher implements usecase.EventPublisher over a Redis topic.
// Delivery is fire-and-forget from the caller's perspective: the publish
// outcome is observed synchronously, but nothing guarantees a consumer
// processed the message.
type RedisPublisher struct {
	client *redis.Client
	topic  string
}

// Compile-time check that RedisPublisher implements EventPublisher.
var _ usecase.EventPublisher = (*RedisPublisher)(nil)

// NewRedisPublisher creates a new RedisPublisher for the given topic.
func NewRedisPublisher(client *redis.Client, topic string) *RedisPublisher {
	return &RedisPublisher{client: client, topic: topic}
}

// PublishUserRegistered publishes a user_registered event with the given
// email and registration time (stamped in UTC, RFC 3339).
func (p *RedisPublisher) PublishUserRegistered(ctx context.Context, email string, registeredAt time.Time) error {
	payload, err := json.Marshal(UserRegisteredEvent{
		EventType:        EventTypeUserRegistered,
		UserEmail:        email,
		RegistrationTime: registeredAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, p.topic, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.topic, err)
	}
	return nil
}
