package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partsbaypro/baypro-api/internal/model"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	token, err := codec.Issue(42, "jane@example.com", model.RoleVendor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, model.RoleVendor, claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewCodec("secret-a", time.Hour)
	verifier := NewCodec("secret-b", time.Hour)

	token, err := issuer.Issue(42, "jane@example.com", model.RoleCustomer)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	token, err := codec.Issue(42, "jane@example.com", model.RoleCustomer)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issued }
	token, err := codec.Issue(42, "jane@example.com", model.RoleCustomer)
	require.NoError(t, err)

	codec.now = func() time.Time { return issued.Add(time.Hour + time.Minute) }
	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := codec.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}
}
