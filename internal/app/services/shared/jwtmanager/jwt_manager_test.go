package jwtmanager

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func TestCreateAndVerifyToken(t *testing.T) {
	ctx := context.Background()
	manager, err := NewJWTManager(testSecret, zap.NewNop())
	require.NoError(t, err)

	created, err := manager.CreateToken(ctx, &CreateTokenInput{Email: "patient@example.com"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), created.ExpiresAt, 5*time.Second)

	verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
	require.NoError(t, err)
	assert.True(t, verified.Valid)
	assert.Equal(t, "patient@example.com", verified.Email)
}

func TestVerifyTokenRejects(t *testing.T) {
	ctx := context.Background()
	manager, err := NewJWTManager(testSecret, zap.NewNop())
	require.NoError(t, err)

	sign := func(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
		signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return signed
	}

	cases := map[string]string{
		"expired": sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"email": "patient@example.com",
			"exp":   time.Now().Add(-time.Minute).Unix(),
		}),
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("other-secret"), jwt.MapClaims{
			"email": "patient@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}),
		"missing email": sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}),
		"unsigned": sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{
			"email": "patient@example.com",
		}),
		"garbage": "not-a-token",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: token})
			require.NoError(t, err)
			assert.False(t, verified.Valid)
			assert.Empty(t, verified.Email)
		})
	}
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	_, err := NewJWTManager("  ", zap.NewNop())
	assert.Error(t, err)
}
