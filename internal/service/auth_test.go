package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/moodbite/backend/internal/model"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func TestAuthService_Register(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewAuthService(db, "test-secret")

	t.Run("registers a new user", func(t *testing.T) {
		token, user, err := svc.Register("Test User", "test@example.com", "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "Test User", user.Name)
		assert.Equal(t, "test@example.com", user.Email)
		assert.NotEqual(t, "password123", user.PasswordHash)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, _, err := svc.Register("Other User", "test@example.com", "password456")

		assert.ErrorIs(t, err, ErrUserExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewAuthService(db, "test-secret")

	_, _, err := svc.Register("Test User", "login@example.com", "password123")
	require.NoError(t, err)

	t.Run("returns token on valid credentials", func(t *testing.T) {
		token, err := svc.Login("login@example.com", "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := svc.Login("login@example.com", "wrong-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewAuthService(db, "test-secret")

	token, user, err := svc.Register("Test User", "claims@example.com", "password123")
	require.NoError(t, err)

	t.Run("round-trips the user id", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewAuthService(db, "different-secret")
		otherToken, _, err := other.Register("Impostor", "impostor@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.ValidateToken(otherToken)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}
