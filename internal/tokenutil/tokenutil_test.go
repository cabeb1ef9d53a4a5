package tokenutil

import (
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestValidate_RoundTrip(t *testing.T) {
	token, err := CreateAccessToken("64b7f0c2a1b2c3d4e5f60718", secret, time.Hour)
	require.NoError(t, err)

	id, err := NewJWTValidator(secret).Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", id)
}

func TestValidate_Rejects(t *testing.T) {
	wrongSecret, err := CreateAccessToken("u1", "other-secret", time.Hour)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ClaimUserID: "u1",
		"exp":       time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte(secret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{ClaimUserID: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"wrong secret": wrongSecret,
		"expired":      expired,
		"missing id":   noID,
		"alg none":     unsigned,
	}
	v := NewJWTValidator(secret)
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			id, err := v.Validate(token)
			assert.Empty(t, id)
			assert.ErrorIs(t, err, domain.ErrAuth)
		})
	}
}

func TestCreateAccessToken_RequiresUser(t *testing.T) {
	_, err := CreateAccessToken("", secret, 0)
	assert.Error(t, err)
}
