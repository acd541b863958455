package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"user_backend/internal/api"
)

// ContextUserID is the gin context key holding the authenticated account id.
const ContextUserID = "userID"

// AuthRequired returns a Gin middleware that validates bearer tokens signed
// with the given secret and rejects unauthenticated requests. The secret is
// injected at construction; the middleware reads no ambient state.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			api.AbortError(c, http.StatusUnauthorized, "Unauthorised.", nil)
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			api.AbortError(c, http.StatusInternalServerError, "Server Error.", nil)
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Only HMAC is accepted.
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			api.AbortError(c, http.StatusUnauthorized, "Unauthorised.", nil)
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(float64); ok { // JWT numbers decode as float64
				c.Set(ContextUserID, uint(sub))
			}
		}
		c.Next()
	}
}
