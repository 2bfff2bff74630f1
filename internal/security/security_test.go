package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCheck(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("senha123")
	require.NoError(t, err)

	assert.NotEqual(t, "senha123", hash)
	assert.True(t, h.Check("senha123", hash))
	assert.False(t, h.Check("senha124", hash))
}

func TestHasher_SaltsEveryHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("igual")
	require.NoError(t, err)
	b, err := h.Hash("igual")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(99).cost)
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("secret", 30*time.Minute)

	token, err := m.IssueForUser(42)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.NotEmpty(t, claims.ID)
	assert.InDelta(t, (30 * time.Minute).Seconds(), claims.Remaining(time.Now()).Seconds(), 5)
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)

	a, err := m.Issue("1", 0)
	require.NoError(t, err)
	b, err := m.Issue("1", 0)
	require.NoError(t, err)

	ca, err := m.Verify(a)
	require.NoError(t, err)
	cb, err := m.Verify(b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	issuedAt := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issuedAt }

	token, err := m.Issue("7", time.Minute)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Minute).Issue("7", 0)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Minute).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "7",
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Minute).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("secret", time.Minute).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_UserIDRejectsNonNumericSubject(t *testing.T) {
	c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "admin@gestongo.pt"}}

	_, err := c.UserID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
