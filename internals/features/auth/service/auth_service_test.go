package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name string
		auth *Authenticator
		pass string
		want error
	}{
		{"plain ok", NewAuthenticator("k", "s3cret", "", 0), "s3cret", nil},
		{"plain wrong", NewAuthenticator("k", "s3cret", "", 0), "nope", ErrInvalidCredentials},
		{"hash ok", NewAuthenticator("k", "", string(hash), 0), "s3cret", nil},
		{"hash preferred", NewAuthenticator("k", "other", string(hash), 0), "other", ErrInvalidCredentials},
		{"not configured", NewAuthenticator("k", "", "", 0), "x", ErrNotConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.auth.CheckPassword(tt.pass)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLoginAndParse(t *testing.T) {
	a := NewAuthenticator("top-secret", "s3cret", "", time.Hour)

	token, sess, err := a.Login("s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Subject)
	assert.True(t, sess.IsAdmin())

	parsed, err := a.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, sess.TokenID, parsed.TokenID)
	assert.True(t, parsed.IsAdmin())

	_, _, err = a.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseRejectsBadTokens(t *testing.T) {
	a := NewAuthenticator("top-secret", "s3cret", "", time.Hour)

	other := NewAuthenticator("another-secret", "s3cret", "", time.Hour)
	foreign, _, err := other.Issue()
	require.NoError(t, err)
	_, err = a.Parse(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewAuthenticator("top-secret", "s3cret", "", time.Minute)
	expired.Now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, _, err := expired.Issue()
	require.NoError(t, err)
	_, err = a.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidToken)

	notAdmin, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Role:             "viewer",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("top-secret"))
	require.NoError(t, err)
	_, err = a.Parse(notAdmin)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.Parse("   ")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.Parse(strings.Repeat("x", 20))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
