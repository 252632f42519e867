package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	jwtSecretOnce sync.Once
	jwtSecret     []byte
)

// JWTSecret returns the signing key. Read lazily so the environment can be
// loaded first (godotenv in main, t.Setenv in tests).
func JWTSecret() []byte {
	jwtSecretOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Fatal("JWT_SECRET is not set in the environment")
		}
		jwtSecret = []byte(secret)
	})
	return jwtSecret
}

// GenerateAccessToken creates a new JWT access token for a provider.
func GenerateAccessToken(providerID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"provider_id": providerID,
		"exp":         time.Now().Add(72 * time.Hour).Unix(),
	})

	return token.SignedString(JWTSecret())
}

// GenerateRefreshToken creates a new JWT refresh token, valid for 30 days.
func GenerateRefreshToken(providerID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"provider_id": providerID,
		"exp":         time.Now().Add(30 * 24 * time.Hour).Unix(),
	})

	return token.SignedString(JWTSecret())
}

// HashToken stores refresh tokens hashed so a database leak does not hand
// out usable credentials.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
