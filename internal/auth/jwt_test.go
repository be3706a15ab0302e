package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithAuth(header string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	return r
}

func TestJWTResolver_Resolve(t *testing.T) {
	v := NewJWTResolver("secret")

	token, err := v.Issue("u1", "alice@example.com", time.Hour)
	require.NoError(t, err)

	p, err := v.Resolve(requestWithAuth("Bearer " + token))

	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "alice@example.com", p.Email)
}

func TestJWTResolver_Resolve_SubjectOnly(t *testing.T) {
	v := NewJWTResolver("secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	p, err := v.Resolve(requestWithAuth("bearer " + token))

	require.NoError(t, err)
	assert.Equal(t, "u7", p.UserID)
}

func TestJWTResolver_Resolve_Failures(t *testing.T) {
	v := NewJWTResolver("secret")
	other := NewJWTResolver("other-secret")

	valid, err := other.Issue("u1", "", time.Hour)
	require.NoError(t, err)

	expiredResolver := NewJWTResolver("secret")
	expiredResolver.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredResolver.Issue("u1", "", time.Hour)
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@b.co"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"garbage", "Bearer not-a-jwt"},
		{"foreign secret", "Bearer " + valid},
		{"expired", "Bearer " + expired},
		{"no user id", "Bearer " + noUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Resolve(requestWithAuth(tt.header))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestJWTResolver_RejectsNoneAlgorithm(t *testing.T) {
	v := NewJWTResolver("secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"userId": "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Validate(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTResolver_NoSecret(t *testing.T) {
	v := NewJWTResolver("")

	_, err := v.Validate("a.b.c")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc", ExtractBearerToken(requestWithAuth("Bearer abc")))
	assert.Equal(t, "abc", ExtractBearerToken(requestWithAuth("BEARER  abc ")))
	assert.Empty(t, ExtractBearerToken(requestWithAuth("Bearer")))
	assert.Empty(t, ExtractBearerToken(requestWithAuth("Token abc")))
	assert.Empty(t, ExtractBearerToken(nil))
}
