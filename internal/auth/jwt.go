package auth

import (
	"errors"

	"voya/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity-provider access token claims. The registered
// subject is the user id.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// ParseAccessToken validates a bearer token issued by the identity provider
// and returns its claims. Tokens are HS256-signed with the project secret.
func ParseAccessToken(cfg *config.IdentityConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithAudience(cfg.Audience), jwt.WithIssuer(cfg.Issuer))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
