package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndValidate(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, issued, err := m.Issue(7, "oid-7", "Ada")
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.UserID)
	require.Equal(t, "oid-7", claims.OpenID)
	require.Equal(t, issued.ID, claims.ID)
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, a, err := m.Issue(1, "oid", "")
	require.NoError(t, err)
	_, b, err := m.Issue(1, "oid", "")
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).Issue(1, "oid", "")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := m.Issue(1, "oid", "")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		UserID: 1,
		OpenID: "oid",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret", time.Hour).Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MissingToken(t *testing.T) {
	_, err := NewTokenManager("test-secret", time.Hour).Validate("")
	require.ErrorIs(t, err, ErrMissingToken)
}
