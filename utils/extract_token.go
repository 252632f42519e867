package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt"
)

// ExtractProviderIDFromToken parses a Bearer authorization header and
// returns the provider id carried in the token claims.
func ExtractProviderIDFromToken(authHeader string) (uint, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, errors.New("invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		return JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	providerIDFloat, ok := claims["provider_id"].(float64) // JWT numeric values are float64
	if !ok {
		return 0, errors.New("invalid provider ID in token")
	}

	return uint(providerIDFloat), nil
}
