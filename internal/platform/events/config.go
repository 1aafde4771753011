// Package events provides the Redis-backed publisher for account lifecycle events.
package events

import (
	"os"
	"time"
)

// Config holds configuration for the event publisher.
type Config struct {
	Topic          string        // Topic the registration event is published to
	PublishTimeout time.Duration // Upper bound for a single publish attempt
}

// LoadConfig loads publisher configuration from environment variables.
func LoadConfig() Config {
	topic := os.Getenv("EVENT_TOPIC")
	if topic == "" {
		topic = "user-registrations"
	}
	return Config{
		Topic:          topic,
		PublishTimeout: 5 * time.Second,
	}
}
