// Package handler provides the HTTP handlers for the account feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/account/domain/entity"
	"user_backend/internal/feature/account/transport/http/dto"
	"user_backend/internal/feature/account/usecase"
	jwtmw "user_backend/internal/platform/jwt"
)

// RegistrationUsecase defines the registration operation consumed by this
// handler. Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type RegistrationUsecase interface {
	// Register runs the registration workflow and returns the created user.
	Register(ctx context.Context, in usecase.RegistrationInput) (*entity.User, error)
}

// AuthUsecase defines the authenticated-account operations consumed by this
// handler.
type AuthUsecase interface {
	// Login authenticates the user and returns a signed access token.
	Login(ctx context.Context, email, password string, client usecase.ClientInfo) (string, error)
	// Logout revokes the session identified by sessionID.
	Logout(ctx context.Context, sessionID string) error
	// Profile returns the user bound to the authenticated identity.
	Profile(ctx context.Context, userID uint) (*entity.User, error)
	// DeleteAccount hard-deletes the user and revokes their sessions.
	DeleteAccount(ctx context.Context, userID uint) error
}

// AccountHandler handles HTTP requests for account operations.
// It depends on the usecase interfaces and speaks JSON.
type AccountHandler struct {
	registration RegistrationUsecase
	auth         AuthUsecase
}

// NewAccountHandler creates a new AccountHandler instance.
// Constructor for dependency injection.
func NewAccountHandler(registration RegistrationUsecase, auth AuthUsecase) *AccountHandler {
	return &AccountHandler{registration: registration, auth: auth}
}

// Register handles the user registration endpoint.
// - 400 with a human-readable message on missing credentials, duplicate
//   email, or invalid address
// - 201 on success
// Internal failures stay generic; no store or broker detail leaks out.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.registration.Register(c.Request.Context(), usecase.RegistrationInput{
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		ZipCode:  req.ZipCode,
		State:    req.State,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials),
			errors.Is(err, usecase.ErrEmailAlreadyExists),
			errors.Is(err, usecase.ErrInvalidAddress):
			slog.Warn("registration rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("registration failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "registration failed"})
		}
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User registered successfully."})
}

// Signin handles the sign-in endpoint.
// Both unknown email and wrong password produce the same bare 401.
func (h *AccountHandler) Signin(c *gin.Context) {
	var req dto.SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, usecase.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		slog.Warn("signin failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.Status(http.StatusUnauthorized)
		return
	}

	slog.Info("user signin successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token})
}

// Signout revokes the current session.
func (h *AccountHandler) Signout(c *gin.Context) {
	sid := c.GetString(jwtmw.ContextSessionID)
	if err := h.auth.Logout(c.Request.Context(), sid); err != nil {
		slog.Warn("signout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "signout failed"})
		return
	}
	c.JSON(http.StatusOK, dto.DetailResponse{Detail: "You have been logged out successfully."})
}

// Profile returns the authenticated user's non-sensitive fields.
func (h *AccountHandler) Profile(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("profile lookup failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "profile lookup failed"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// Delete hard-deletes the authenticated user's account.
// Deletion operates on the identity bound to the token, never on
// re-submitted credentials.
func (h *AccountHandler) Delete(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if err := h.auth.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found."})
			return
		}
		slog.Error("account deletion failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "deletion failed"})
		return
	}
	slog.Info("account deleted", "user_id", userID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully."})
}

// Hello is the authenticated connectivity check.
func (h *AccountHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, "Hello from users API")
}
