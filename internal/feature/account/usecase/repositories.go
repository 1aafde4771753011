package usecase

import (
	"context"
	"time"

	"user_backend/internal/feature/account/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage. The store's unique index on
	// email decides duplicate races atomically; Create returns
	// ErrEmailAlreadyExists when the insert loses one.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Delete hard-deletes the user with the specified ID.
	// It returns ErrUserNotFound if no row was removed.
	Delete(ctx context.Context, id uint) error
}

// SessionRepository abstracts the persistence layer for session entities.
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke marks a session as revoked by setting RevokedAt.
	Revoke(ctx context.Context, id string) error

	// RevokeAllByUserID revokes all sessions for a given user.
	RevokeAllByUserID(ctx context.Context, userID uint) error
}

// TokenGenerator issues signed access tokens bound to a user and a session.
type TokenGenerator interface {
	// GenerateToken creates a signed token for the given user and session ID.
	GenerateToken(userID uint, email, sessionID string) (string, error)
}

// AddressValidator verifies a postal address against an external service.
type AddressValidator interface {
	// Validate reports whether the address is deliverable. The implementation
	// is fail-closed: any error reaching the verification service yields
	// false, never an error to the caller.
	Validate(ctx context.Context, street, zipCode, state string) bool
}

// EventPublisher emits account lifecycle events to a message topic.
type EventPublisher interface {
	// PublishUserRegistered publishes a user_registered event for the given
	// email, stamped with the supplied registration time.
	PublishUserRegistered(ctx context.Context, email string, registeredAt time.Time) error
}
