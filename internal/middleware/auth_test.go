package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":    "ops",
		"nameid": "ops",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	viper.Set("jwt.secret_key", "test-secret")
	InitAuthMiddleware(nil)

	var seenOperator string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenOperator, _ = r.Context().Value("operator").(string)
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthMiddleware(next)

	do := func(authHeader string) *httptest.ResponseRecorder {
		r := httptest.NewRequest("GET", "/accounts", nil)
		if authHeader != "" {
			r.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w
	}

	t.Run("passes a valid token and exposes the operator", func(t *testing.T) {
		w := do("Bearer " + signToken(t, "test-secret"))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "ops", seenOperator)
	})

	t.Run("missing header", func(t *testing.T) {
		w := do("")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header required")
	})

	t.Run("malformed header", func(t *testing.T) {
		w := do("Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		w := do("Bearer " + signToken(t, "other-secret"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.MapClaims{"sub": "ops", "exp": time.Now().Add(-time.Hour).Unix()}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		w := do("Bearer " + signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		token := signToken(t, "test-secret")
		rdb, mock := redismock.NewClientMock()
		mock.ExpectExists("blacklist:" + token).SetVal(1)
		InitAuthMiddleware(rdb)
		defer InitAuthMiddleware(nil)

		w := do("Bearer " + token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has been revoked")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blacklist miss falls through to validation", func(t *testing.T) {
		token := signToken(t, "test-secret")
		rdb, mock := redismock.NewClientMock()
		mock.ExpectExists("blacklist:" + token).SetVal(0)
		InitAuthMiddleware(rdb)
		defer InitAuthMiddleware(nil)

		w := do("Bearer " + token)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
