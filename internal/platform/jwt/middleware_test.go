package jwtmw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_backend/internal/feature/account/domain/entity"
	"user_backend/internal/feature/account/usecase"
)

// mockSessionChecker is a mock implementation of the SessionChecker interface.
type mockSessionChecker struct {
	FindByIDFunc func(ctx context.Context, id string) (*entity.Session, error)
}

func (m *mockSessionChecker) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, usecase.ErrSessionNotFound
}

func liveSession(id string, userID uint) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func setupRouter(secret string, sessions SessionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(secret, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetUint(ContextUserID),
			"email":      c.GetString(ContextEmail),
			"session_id": c.GetString(ContextSessionID),
		})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	const secret = "test-secret"

	makeToken := func(t *testing.T, sid string) string {
		t.Helper()
		signed, err := NewGenerator(secret, time.Hour).GenerateToken(42, "test@example.com", sid)
		require.NoError(t, err)
		return signed
	}

	t.Run("valid token with live session passes", func(t *testing.T) {
		sessions := &mockSessionChecker{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
				return liveSession(id, 42), nil
			},
		}
		router := setupRouter(secret, sessions)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, "session-001"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":42,"email":"test@example.com","session_id":"session-001"}`, w.Body.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := setupRouter(secret, &mockSessionChecker{})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		router := setupRouter(secret, &mockSessionChecker{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
				return liveSession(id, 42), nil
			},
		})

		other, err := NewGenerator("other-secret", time.Hour).GenerateToken(42, "test@example.com", "session-001")
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+other)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked session is rejected", func(t *testing.T) {
		sessions := &mockSessionChecker{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
				s := liveSession(id, 42)
				now := time.Now()
				s.RevokedAt = &now
				return s, nil
			},
		}
		router := setupRouter(secret, sessions)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, "session-001"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing session is rejected", func(t *testing.T) {
		router := setupRouter(secret, &mockSessionChecker{})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, "session-gone"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired session is rejected", func(t *testing.T) {
		sessions := &mockSessionChecker{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
				s := liveSession(id, 42)
				s.ExpiresAt = time.Now().Add(-time.Minute)
				return s, nil
			},
		}
		router := setupRouter(secret, sessions)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, "session-001"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
