// Package auth holds the JWT claims shared by the login flow and the
// request middleware.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"talenthub/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated identity inside the token so the
// middleware can build an Actor without a database round trip.
type Claims struct {
	IsAdmin     bool `json:"adm"`
	IsRecruiter bool `json:"rec"`
	jwt.RegisteredClaims
}

// Actor converts the claims back into the request identity.
func (c *Claims) Actor() (models.Actor, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return models.Actor{}, fmt.Errorf("invalid subject claim: %w", err)
	}
	return models.Actor{ID: id, IsAdmin: c.IsAdmin, IsRecruiter: c.IsRecruiter}, nil
}

// GenerateToken signs a token for the user with HS256.
func GenerateToken(user *models.User, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		IsAdmin:     user.IsAdmin,
		IsRecruiter: user.IsRecruiter,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token signature and expiry and returns its claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
