package services

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/argon2"

	"github.com/swiftalliance/backend/internal/models"
)

// AuthService authenticates the gateway operator. There is exactly one
// operator account, seeded from configuration at startup; no user store,
// no registration, no roles.
type AuthService struct {
	redis     *redis.Client
	validator *ValidationHelper
	operator  models.Operator
}

// NewAuthService seeds the operator account from the operator.username and
// operator.password configuration keys. The plaintext password is hashed
// immediately and never retained.
func NewAuthService(redisClient *redis.Client, validator *ValidationHelper) (*AuthService, error) {
	username := viper.GetString("operator.username")
	password := viper.GetString("operator.password")
	if username == "" || password == "" {
		return nil, fmt.Errorf("operator credentials are not configured")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash operator password: %w", err)
	}

	return &AuthService{
		redis:     redisClient,
		validator: validator,
		operator: models.Operator{
			Username:     username,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		},
	}, nil
}

func (s *AuthService) sendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	SendErrorResponse(w, message, statusCode, validationErr)
}

// Login authenticates the operator and issues a JWT
// @Summary Operator login
// @Description Authenticate the gateway operator and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {string} string "Invalid request"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 500 {string} string "Internal server error"
// @Router /auth/login [post]
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AUTH] Login attempt from IP: %s", r.RemoteAddr)

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.LoginRequest
	if err := dec.Decode(&req); err != nil {
		log.Printf("[AUTH] Login failed - invalid request: %v", err)
		s.sendErrorResponse(w, "Invalid request", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		log.Printf("[AUTH] Multiple JSON objects detected")
		s.sendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		log.Printf("[AUTH] Login validation failed: %v", err)
		s.sendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	if req.Username != s.operator.Username {
		log.Printf("[AUTH] Unknown operator: %s", req.Username)
		s.sendErrorResponse(w, "Invalid credentials", http.StatusUnauthorized, nil)
		return
	}

	if !verifyPassword(req.Password, s.operator.PasswordHash) {
		log.Printf("[AUTH] Invalid password for operator: %s", req.Username)
		s.sendErrorResponse(w, "Invalid credentials", http.StatusUnauthorized, nil)
		return
	}

	token, expiresAt, err := generateJWT(s.operator.Username)
	if err != nil {
		log.Printf("[AUTH] JWT generation failed for %s: %v", req.Username, err)
		s.sendErrorResponse(w, "Failed to generate token", http.StatusInternalServerError, nil)
		return
	}

	log.Printf("[AUTH] Login successful for operator %s", s.operator.Username)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout revokes the presented token
// @Summary Operator logout
// @Description Blacklist the presented bearer token until it expires
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Logout successful"
// @Router /auth/logout [post]
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token != "" && len(token) > 7 {
		token = token[7:] // Remove "Bearer " prefix

		if s.redis != nil {
			ctx := context.Background()
			key := fmt.Sprintf("blacklist:%s", token)
			// Blacklist token until its expiration
			expiry := time.Duration(viper.GetInt("jwt.expiry_hours")) * time.Hour
			if err := s.redis.Set(ctx, key, "1", expiry).Err(); err != nil {
				log.Printf("[AUTH] Failed to blacklist token: %v", err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logout successful"})
}

// CurrentOperator reports who is behind the bearer token
// @Summary Current operator
// @Description Return the operator identity carried by the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} models.Operator "Operator details"
// @Failure 401 {string} string "Unauthorized"
// @Router /auth/operator [get]
func (s *AuthService) CurrentOperator(w http.ResponseWriter, r *http.Request) {
	username := fmt.Sprintf("%v", r.Context().Value("operator"))
	if username != s.operator.Username {
		log.Printf("[AUTH] Token subject %q does not match the seeded operator", username)
		s.sendErrorResponse(w, "Unknown operator", http.StatusUnauthorized, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.operator)
}

func generateJWT(username string) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(viper.GetInt("jwt.expiry_hours")) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    username,
		"nameid": username,
		"exp":    expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte(viper.GetString("jwt.secret_key")))
	return signed, expiresAt, err
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, viper.GetInt("argon2.salt_length"))
	if _, err := cryptorand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return fmt.Sprintf("%s$%s", base64.StdEncoding.EncodeToString(salt), base64.StdEncoding.EncodeToString(hash)), nil
}

func verifyPassword(password, hashedPassword string) bool {
	parts := strings.Split(hashedPassword, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}

	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	computedHash := argon2.IDKey([]byte(password), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return string(hash) == string(computedHash)
}
