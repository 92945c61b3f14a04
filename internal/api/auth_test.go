package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("registers a new user", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{})

		w := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
			"name":     "New User",
			"email":    "new@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var body map[string]interface{}
		decodeBody(t, w, &body)
		assert.NotEmpty(t, body["token"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "new@example.com", user["email"])
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{})

		w := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
			"name":     "New User",
			"email":    "invalid-email",
			"password": "password123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email")
	})

	t.Run("rejects short password", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{})

		w := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
			"name":     "New User",
			"email":    "new@example.com",
			"password": "123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "at least 6 characters")
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{})

		w := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
			"email": "new@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "required")
	})

	t.Run("rejects duplicate registration", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{})

		w := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
			"name":     "Test User",
			"email":    "test@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})
}

func TestLogin(t *testing.T) {
	t.Run("returns token for valid credentials", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{})

		w := env.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "test@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		decodeBody(t, w, &body)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		env := setupTestEnv(t, &stubGenerator{})

		w := env.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "test@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid credentials")
	})
}
