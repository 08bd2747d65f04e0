package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-product-keeper/internal/config"
	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthSvc() AuthService {
	return NewAuthService(config.Auth{TokenSignKey: "sign-key", TokenIssuer: "issuer"}, logger.Nop())
}

func TestAuthService_ParseToken_Success(t *testing.T) {
	token, err := utils.GenerateJWTToken("issuer", 42, time.Hour, "sign-key")
	require.NoError(t, err)

	parsed, err := newTestAuthSvc().ParseToken(context.Background(), token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	token, err := utils.GenerateJWTToken("issuer", 42, -time.Minute, "sign-key")
	require.NoError(t, err)

	_, err = newTestAuthSvc().ParseToken(context.Background(), token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	wrongIssuer, err := utils.GenerateJWTToken("someone-else", 42, time.Hour, "sign-key")
	require.NoError(t, err)
	wrongKey, err := utils.GenerateJWTToken("issuer", 42, time.Hour, "other-key")
	require.NoError(t, err)

	tests := map[string]string{
		"wrong issuer": wrongIssuer.SignedString,
		"wrong key":    wrongKey.SignedString,
		"garbage":      "garbage",
		"empty":        "",
	}

	for name, tokenString := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newTestAuthSvc().ParseToken(context.Background(), tokenString)

			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
			assert.NotErrorIs(t, err, ErrTokenIsExpired)
		})
	}
}
