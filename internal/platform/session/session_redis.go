// Package session provides the Redis-backed session repository.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"user_backend/internal/feature/account/domain/entity"
	"user_backend/internal/feature/account/usecase"
)

// SessionRedis implements usecase.SessionRepository using Redis.
// Expiry is handled by Redis TTLs; revoked sessions are kept for a short
// window so the middleware sees the revocation instead of a missing key.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check that SessionRedis implements SessionRepository.
var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// sessionKey returns the Redis key for a session.
func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// userSessionsKey returns the Redis key for a user's session set.
func (r *SessionRedis) userSessionsKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

// Create persists a new session to Redis with a TTL matching its expiry.
func (r *SessionRedis) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	if err := r.client.Set(ctx, r.sessionKey(session.ID), data, ttl).Err(); err != nil {
		return err
	}

	// Track the session in the user's set so deletion can revoke everything.
	if err := r.client.SAdd(ctx, r.userSessionsKey(session.UserID), session.ID).Err(); err != nil {
		return err
	}

	return nil
}

// FindByID retrieves a session by its ID.
// Returns usecase.ErrSessionNotFound if the key is missing or expired.
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Revoke marks a session as revoked.
func (r *SessionRedis) Revoke(ctx context.Context, id string) error {
	session, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	session.RevokedAt = &now

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Keep a short TTL on revoked sessions for audit purposes.
	return r.client.Set(ctx, r.sessionKey(id), data, 24*time.Hour).Err()
}

// RevokeAllByUserID revokes all sessions for a user. Sessions that have
// already fallen out via TTL are skipped and removed from the set.
func (r *SessionRedis) RevokeAllByUserID(ctx context.Context, userID uint) error {
	ids, err := r.client.SMembers(ctx, r.userSessionsKey(userID)).Result()
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := r.Revoke(ctx, id); err != nil {
			if err == usecase.ErrSessionNotFound {
				r.client.SRem(ctx, r.userSessionsKey(userID), id)
				continue
			}
			return err
		}
	}

	return nil
}
