// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/account/transport/handler"
)

// NewRouter builds the Gin engine with the public and token-protected
// route groups. authMW is the bearer-token middleware applied to every
// authenticated route.
func NewRouter(account *handler.AccountHandler, authMW gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.POST("/register", account.Register)
	r.POST("/signin", account.Signin)

	// Authentication required
	auth := r.Group("/")
	auth.Use(authMW)
	{
		auth.POST("/signout", account.Signout)
		auth.GET("/profile", account.Profile)
		auth.DELETE("/delete", account.Delete)
		auth.GET("/hello", account.Hello)
	}

	return r
}
