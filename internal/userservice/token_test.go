package userservice

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestIssueToken(t *testing.T) {
	secret := []byte("test-secret-key")

	token, err := issueToken(secret, 42, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token.Plain)
	assert.Equal(t, 42, token.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.Expiry, 5*time.Second)

	userID, err := verifyToken(secret, token.Plain)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestVerifyToken(t *testing.T) {
	secret := []byte("test-secret-key")

	signToken := func(claims jwt.RegisteredClaims, key []byte) string {
		plain, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString(key)
		assert.NoError(t, err)
		return plain
	}

	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{
			name: "expired token",
			plain: signToken(jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   "1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			}, secret),
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong secret",
			plain: signToken(jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   "1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}, []byte("other-secret")),
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			plain: signToken(jwt.RegisteredClaims{
				Issuer:    "someone-else",
				Subject:   "1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}, secret),
			wantErr: ErrInvalidToken,
		},
		{
			name: "non-numeric subject",
			plain: signToken(jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   "abc",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}, secret),
			wantErr: ErrInvalidToken,
		},
		{
			name: "zero subject",
			plain: signToken(jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   strconv.Itoa(0),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}, secret),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "garbage token",
			plain:   "not.a.token",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := verifyToken(secret, tt.plain)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, userID)
		})
	}
}

func TestVerifyTokenRejectsUnsignedAlgorithm(t *testing.T) {
	secret := []byte("test-secret-key")

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	plain, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = verifyToken(secret, plain)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
