package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 1)
	profile := &model.Profile{ID: "u1", Email: "u1@college.edu", Role: model.RoleTeacher}

	token, err := svc.GenerateToken(profile)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1@college.edu", claims.Email)
	assert.Equal(t, model.RoleTeacher, claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 1)

	_, err := svc.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	issuer := NewJWTService("secret-a", 1)
	verifier := NewJWTService("secret-b", 1)

	token, err := issuer.GenerateToken(&model.Profile{ID: "u1", Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
