package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"soulforge/internal/models"
)

func TestVerify(t *testing.T) {
	creds := DefaultCredentials()

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
		wantRole models.UserRole
	}{
		{name: "Admin", username: "Sage", password: "Sagereturns", wantOK: true, wantRole: models.RoleAdmin},
		{name: "Showoff", username: "Showcase", password: "TheSage", wantOK: true, wantRole: models.RoleShowoff},
		{name: "Wrong Password", username: "Sage", password: "TheSage", wantOK: false},
		{name: "Unknown User", username: "Stranger", password: "Sagereturns", wantOK: false},
		{name: "Empty Password", username: "Sage", password: "", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			user, ok := creds.Verify(tt.username, tt.password)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, user)
				assert.Equal(t, tt.wantRole, user.Role)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func TestOverrideWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	creds := DefaultCredentials()
	creds.Override("Sage", string(hash))

	_, ok := creds.Verify("Sage", "Sagereturns")
	assert.False(t, ok, "the built-in password stops working once overridden")

	user, ok := creds.Verify("Sage", "hunter2")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestOverrideIgnoresUnknownAndEmpty(t *testing.T) {
	creds := DefaultCredentials()
	creds.Override("Nobody", "secret")
	creds.Override("Sage", "")

	_, ok := creds.Verify("Sage", "Sagereturns")
	assert.True(t, ok)
	assert.Len(t, creds, 2)
}

func TestIssueToken(t *testing.T) {
	secret := "test-secret-key-12345678901234567890123456789012"
	user := &models.User{Username: "Sage", Role: models.RoleAdmin}

	signed, err := IssueToken(secret, user, time.Hour)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "Sage", claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
}
