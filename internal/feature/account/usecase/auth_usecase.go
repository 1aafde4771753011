package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"user_backend/internal/feature/account/domain/entity"
)

// ClientInfo carries request metadata recorded on session creation.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// authUsecase implements sign-in, sign-out, profile retrieval and
// account deletion.
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     TokenGenerator
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new authUsecase instance. sessionTTL is the
// lifetime of both the server session and the issued access token.
func NewAuthUsecase(users UserRepository, sessions SessionRepository,
	tokens TokenGenerator, sessionTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// newSessionID returns a 64-character hex session identifier.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Login authenticates the user and, on success, establishes a server session
// and returns a signed access token carrying the session ID.
// A bcrypt comparison runs even when the email is unknown so that both
// failure cases take the same amount of time.
func (u *authUsecase) Login(ctx context.Context, email, password string, client ClientInfo) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the unknown-email path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// Unknown email and wrong password collapse into the same generic error.
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	sid, err := newSessionID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        sid,
		UserID:    user.ID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, sid)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// Logout revokes the session identified by sessionID.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessions.Revoke(ctx, sessionID)
}

// Profile returns the user bound to the authenticated identity.
func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// DeleteAccount hard-deletes the user's record and revokes all of their
// sessions, so outstanding tokens stop working immediately. A revocation
// failure is logged rather than surfaced: the row is already gone and the
// sessions expire by TTL regardless.
func (u *authUsecase) DeleteAccount(ctx context.Context, userID uint) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		return err
	}
	if err := u.sessions.RevokeAllByUserID(ctx, userID); err != nil {
		slog.Warn("failed to revoke sessions for deleted user", "user_id", userID, "error", err)
	}
	return nil
}
