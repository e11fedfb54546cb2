package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Issue("user-123")
	require.NoError(t, err)

	userID, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestIssuedTokensDiffer(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok1, err := m.Issue("user-123")
	require.NoError(t, err)
	tok2, err := m.Issue("user-123")
	require.NoError(t, err)

	// Issued in the same second, but the jti keeps them distinct.
	assert.NotEqual(t, tok1, tok2)

	id1, err := m.Verify(tok1)
	require.NoError(t, err)
	id2, err := m.Verify(tok2)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Second)

	tok, err := m.Issue("user-123")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyBeforeExpiry(t *testing.T) {
	m := NewManager("test-secret", 2*time.Second)

	tok, err := m.Issue("user-123")
	require.NoError(t, err)

	userID, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewManager("right-secret", time.Hour)
	verifier := NewManager("wrong-secret", time.Hour)

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyMalformed(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "not.a.jwt"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Issue("")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrMalformed)
}
