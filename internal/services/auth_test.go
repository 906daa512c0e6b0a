package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftalliance/backend/internal/models"
)

func setupAuthConfig() {
	viper.Set("operator.username", "ops")
	viper.Set("operator.password", "super-secret-ops")
	viper.Set("argon2.salt_length", 16)
	viper.Set("argon2.time", 1)
	viper.Set("argon2.memory", 64*1024)
	viper.Set("argon2.threads", 4)
	viper.Set("argon2.key_length", 32)
	viper.Set("jwt.secret_key", "test-secret")
	viper.Set("jwt.expiry_hours", 24)
}

func TestNewAuthService(t *testing.T) {
	setupAuthConfig()

	t.Run("seeds operator from config", func(t *testing.T) {
		service, err := NewAuthService(nil, NewValidationHelper())
		require.NoError(t, err)
		assert.Equal(t, "ops", service.operator.Username)
		assert.NotEmpty(t, service.operator.PasswordHash)
		assert.NotContains(t, service.operator.PasswordHash, "super-secret-ops")
	})

	t.Run("missing credentials", func(t *testing.T) {
		viper.Set("operator.password", "")
		defer viper.Set("operator.password", "super-secret-ops")

		_, err := NewAuthService(nil, NewValidationHelper())
		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	setupAuthConfig()

	service, err := NewAuthService(nil, NewValidationHelper())
	require.NoError(t, err)

	login := func(body []byte) *httptest.ResponseRecorder {
		r := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		service.Login(w, r)
		return w
	}

	t.Run("successful login", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Username: "ops", Password: "super-secret-ops"})
		w := login(body)

		assert.Equal(t, http.StatusOK, w.Code)
		var response models.LoginResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.NotEmpty(t, response.Token)

		expiresAt, err := time.Parse(time.RFC3339, response.ExpiresAt)
		assert.NoError(t, err)
		assert.True(t, expiresAt.After(time.Now()))
	})

	t.Run("wrong password", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Username: "ops", Password: "not-the-password"})
		w := login(body)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var response ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "Invalid credentials", response.Error)
	})

	t.Run("unknown operator", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Username: "intruder", Password: "super-secret-ops"})
		w := login(body)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid request body", func(t *testing.T) {
		w := login([]byte("invalid"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		w := login([]byte(`{"username":"ops","password":"super-secret-ops","role":"admin"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("multiple JSON objects rejected", func(t *testing.T) {
		w := login([]byte(`{"username":"ops","password":"super-secret-ops"}{"username":"ops"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Username: "ops", Password: "short"})
		w := login(body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "Validation failed", response.Error)
		assert.Contains(t, response.Details, "Password")
	})
}

func TestAuthService_Logout(t *testing.T) {
	setupAuthConfig()

	t.Run("without redis", func(t *testing.T) {
		service, err := NewAuthService(nil, NewValidationHelper())
		require.NoError(t, err)

		r := httptest.NewRequest("POST", "/auth/logout", nil)
		r.Header.Set("Authorization", "Bearer some-token")
		w := httptest.NewRecorder()

		service.Logout(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]string
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "Logout successful", response["message"])
	})

	t.Run("blacklists token in redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSet("blacklist:some-token", "1", 24*time.Hour).SetVal("OK")

		service, err := NewAuthService(rdb, NewValidationHelper())
		require.NoError(t, err)

		r := httptest.NewRequest("POST", "/auth/logout", nil)
		r.Header.Set("Authorization", "Bearer some-token")
		w := httptest.NewRecorder()

		service.Logout(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthService_CurrentOperator(t *testing.T) {
	setupAuthConfig()

	service, err := NewAuthService(nil, NewValidationHelper())
	require.NoError(t, err)

	t.Run("returns the seeded operator", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/auth/operator", nil)
		r = r.WithContext(context.WithValue(r.Context(), "operator", "ops"))
		w := httptest.NewRecorder()

		service.CurrentOperator(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var operator models.Operator
		json.Unmarshal(w.Body.Bytes(), &operator)
		assert.Equal(t, "ops", operator.Username)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("rejects unknown subject", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/auth/operator", nil)
		r = r.WithContext(context.WithValue(r.Context(), "operator", "stranger"))
		w := httptest.NewRecorder()

		service.CurrentOperator(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPasswordHashing(t *testing.T) {
	setupAuthConfig()

	password := "testpassword"

	hashed, err := hashPassword(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)

	assert.True(t, verifyPassword(password, hashed))
	assert.False(t, verifyPassword("wrongpassword", hashed))
	assert.False(t, verifyPassword(password, "not-a-valid-hash"))
}

func TestGenerateJWT(t *testing.T) {
	setupAuthConfig()

	token, expiresAt, err := generateJWT("ops")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "ops", claims["sub"])
}
