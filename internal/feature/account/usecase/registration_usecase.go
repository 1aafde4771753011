package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"user_backend/internal/feature/account/domain/entity"
)

// RegistrationInput carries the fields of a registration request.
// The plaintext password is never persisted or logged.
type RegistrationInput struct {
	Email    string
	Password string
	Address  string
	ZipCode  string
	State    string
}

// registrationUsecase orchestrates the registration workflow:
// input check, uniqueness check, address validation, persistence,
// and event publication, strictly in that order.
type registrationUsecase struct {
	users          UserRepository
	validator      AddressValidator
	publisher      EventPublisher
	publishTimeout time.Duration
}

// NewRegistrationUsecase creates a new registrationUsecase instance.
// publishTimeout bounds the post-commit event publication; it does not
// affect any step before persistence.
func NewRegistrationUsecase(users UserRepository, validator AddressValidator,
	publisher EventPublisher, publishTimeout time.Duration) *registrationUsecase {
	return &registrationUsecase{
		users:          users,
		validator:      validator,
		publisher:      publisher,
		publishTimeout: publishTimeout,
	}
}

// normalizeEmail canonicalizes an email address for storage and lookup.
// Uniqueness is case-insensitive, so the store only ever sees this form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register runs the registration workflow and returns the created user.
//
// Address validation runs before persistence so that invalid-address
// submissions never create a row. Event publication runs after the row is
// committed, and a publish failure never rolls the registration back.
func (u *registrationUsecase) Register(ctx context.Context, in RegistrationInput) (*entity.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrMissingCredentials
	}

	// Pre-check for the friendly error in the common sequential case.
	// The unique index behind Create is what decides concurrent races.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if !u.validator.Validate(ctx, in.Address, in.ZipCode, in.State) {
		return nil, ErrInvalidAddress
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// The user exists at this point; publication is best-effort. The publish
	// context is detached from the request so a client disconnect after the
	// commit cannot cancel the event.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.publishTimeout)
	defer cancel()
	if err := u.publisher.PublishUserRegistered(pubCtx, user.Email, time.Now().UTC()); err != nil {
		slog.Error("failed to publish user_registered event", "email", user.Email, "error", err)
	}

	return user, nil
}
