package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// blacklistClient, when set, is consulted so revoked tokens stop working
// before they expire. Auth works without Redis; revocation does not.
var blacklistClient *redis.Client

// InitAuthMiddleware wires the Redis client used for revocation checks.
// rdb may be nil.
func InitAuthMiddleware(rdb *redis.Client) {
	blacklistClient = rdb
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Get token from Authorization header
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		// Extract token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
			return
		}

		token := parts[1]

		if revoked(r.Context(), token) {
			http.Error(w, "Token has been revoked", http.StatusUnauthorized)
			return
		}

		operator, err := validateToken(token)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		// Add operator to context
		ctx := context.WithValue(r.Context(), "operator", operator)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func revoked(ctx context.Context, token string) bool {
	if blacklistClient == nil {
		return false
	}

	n, err := blacklistClient.Exists(ctx, fmt.Sprintf("blacklist:%s", token)).Result()
	if err != nil {
		log.Printf("[AUTH] Blacklist check failed: %v", err)
		return false
	}
	return n > 0
}

func validateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(viper.GetString("jwt.secret_key")), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil || !token.Valid {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", err
	}

	operator := claims["sub"]
	return fmt.Sprintf("%v", operator), nil
}
