package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furniture-shop/config"
)

// mintToken builds a token the way the external identity provider would.
func mintToken(t *testing.T, ownerID, email, secret string, ttl time.Duration) string {
	t.Helper()
	claims := Claims{
		OwnerID: ownerID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateToken(t *testing.T) {
	config.LoadConfig()

	token := mintToken(t, "owner-1", "amina@example.com", config.AppConfig.JWTSecret, time.Hour)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.OwnerID)
	assert.Equal(t, "amina@example.com", claims.Email)
}

func TestValidateToken_Garbage(t *testing.T) {
	config.LoadConfig()

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	config.LoadConfig()

	token := mintToken(t, "owner-1", "amina@example.com", "some-other-secret", time.Hour)

	_, err := ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	config.LoadConfig()

	token := mintToken(t, "owner-1", "amina@example.com", config.AppConfig.JWTSecret, -time.Hour)

	_, err := ValidateToken(token)
	assert.Error(t, err)
}
