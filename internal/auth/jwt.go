package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"portfolio_backend/internal/config"
)

// fallbackSecret is used when no signing secret is configured. A startup
// warning is logged in app.Run; do not rely on this outside development.
const fallbackSecret = "your-secret-key"

const defaultTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims carried by every session token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

func signingSecret() []byte {
	if cfg := config.AppConfig; cfg != nil && cfg.JWT.Secret != "" {
		return []byte(cfg.JWT.Secret)
	}
	return []byte(fallbackSecret)
}

func tokenTTL() time.Duration {
	if cfg := config.AppConfig; cfg != nil && cfg.JWT.TTLDays > 0 {
		return time.Duration(cfg.JWT.TTLDays) * 24 * time.Hour
	}
	return defaultTTL
}

// GenerateToken issues a signed session token for the given user.
func GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret())
}

// ParseToken validates signature and expiry and returns the claims.
// An expired or tampered token is an ordinary error, never a panic.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return signingSecret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenFromRequest looks for a token in the Authorization header first,
// then in the "token" cookie. Absence of both is not an error.
func TokenFromRequest(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), true
	}

	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie, true
	}

	return "", false
}
