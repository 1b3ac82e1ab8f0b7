package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"soulforge/internal/models"
)

// DefaultSessionTTL bounds how long an issued bearer token stays valid.
const DefaultSessionTTL = 24 * time.Hour

// IssueToken signs a bearer token for an authenticated user. The subject is
// the username and the role travels as a custom claim so the middleware can
// rebuild the user without a lookup.
func IssueToken(secret string, user *models.User, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
