// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"talenthub/internal/auth"
	"talenthub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authorizationHeader = "Authorization"
	actorCtx            = "actor" // Key to store the authenticated actor in context
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		claims, err := auth.ParseToken(headerParts[1], jwtSecret)
		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		actor, err := claims.Actor()
		if err != nil {
			log.Printf("Auth middleware: Error building actor from token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
			return
		}

		c.Set(actorCtx, actor)
		c.Next()
	}
}

// RequireAdmin aborts requests whose actor is not a site admin. It must run
// after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := GetActorFromContext(c)
		if err != nil || !actor.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetActorFromContext returns the authenticated actor set by JWTAuthMiddleware.
func GetActorFromContext(c *gin.Context) (models.Actor, error) {
	value, exists := c.Get(actorCtx)
	if !exists {
		return models.Actor{}, errors.New("actor not found in context")
	}
	actor, ok := value.(models.Actor)
	if !ok {
		return models.Actor{}, errors.New("actor in context has unexpected type")
	}
	return actor, nil
}
