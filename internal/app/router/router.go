// Package router builds the Gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "user_backend/internal/feature/auth/transport/handler"
	userhandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/platform/http/handler"
	jwtmw "user_backend/internal/platform/jwt"
)

// NewRouter wires the API route table. Register and login are public (behind
// the rate limiter); every user-resource route requires a bearer token.
func NewRouter(auth *authhandler.AuthHandler, users *userhandler.UserHandler,
	authLimit gin.HandlerFunc, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	v1 := r.Group("/api/v1")
	v1.POST("/register", authLimit, auth.Register)
	v1.POST("/login", authLimit, auth.Login)

	protected := v1.Group("/users")
	protected.Use(jwtmw.AuthRequired(jwtSecret))
	{
		protected.GET("", users.List)
		protected.POST("", users.Create)
		protected.POST("/search", users.Search)
		protected.GET("/:id", users.Show)
		protected.PUT("/:id", users.Update)
		protected.DELETE("/:id", users.Destroy)
	}

	return r
}
