package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"user_backend/internal/feature/account/domain/entity"
)

// Gin context keys populated by AuthRequired.
const (
	ContextUserID    = "userID"
	ContextEmail     = "email"
	ContextSessionID = "sessionID"
)

// SessionChecker looks up sessions for revocation checks.
type SessionChecker interface {
	// FindByID retrieves a session by its ID.
	FindByID(ctx context.Context, id string) (*entity.Session, error)
}

// AuthRequired returns a Gin middleware that validates bearer tokens and
// restricts access to authenticated users. A token is rejected when its
// signature fails, when it carries no live session, or when that session has
// been revoked or has expired — so sign-out takes effect before the token's
// own expiry.
func AuthRequired(secret string, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Only HMAC is accepted.
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		sid, _ := claims["sid"].(string)
		if sid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		session, err := sessions.FindByID(c.Request.Context(), sid)
		if err != nil || !session.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or revoked"})
			return
		}

		if sub, ok := claims["sub"].(float64); ok { // JWT numbers decode as float64
			c.Set(ContextUserID, uint(sub))
		}
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextEmail, email)
		}
		c.Set(ContextSessionID, sid)

		c.Next()
	}
}
