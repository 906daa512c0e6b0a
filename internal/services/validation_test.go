package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/swiftalliance/backend/internal/models"
)

type TestStruct struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
	Age   int    `validate:"required,gte=18"`
}

func TestValidationHelper_ValidateStruct(t *testing.T) {
	vh := NewValidationHelper()

	t.Run("valid struct", func(t *testing.T) {
		valid := TestStruct{
			Name:  "John Doe",
			Email: "john@example.com",
			Age:   25,
		}

		err := vh.ValidateStruct(&valid)
		assert.NoError(t, err)
	})

	t.Run("invalid struct - missing required fields", func(t *testing.T) {
		invalid := TestStruct{
			Name: "J", // Too short
			// Email missing
			Age: 16, // Too young
		}

		err := vh.ValidateStruct(&invalid)
		assert.Error(t, err)

		validationErrors, ok := err.(validator.ValidationErrors)
		assert.True(t, ok)
		assert.Len(t, validationErrors, 3) // Name, Email, Age errors
	})

	t.Run("invalid email format", func(t *testing.T) {
		invalid := TestStruct{
			Name:  "John Doe",
			Email: "invalid-email",
			Age:   25,
		}

		err := vh.ValidateStruct(&invalid)
		assert.Error(t, err)

		validationErrors, ok := err.(validator.ValidationErrors)
		assert.True(t, ok)
		assert.Len(t, validationErrors, 1)
		assert.Equal(t, "Email", validationErrors[0].Field())
		assert.Equal(t, "email", validationErrors[0].Tag())
	})
}

func TestValidationHelper_DomainTags(t *testing.T) {
	vh := NewValidationHelper()

	t.Run("accepts a positive decimal amount", func(t *testing.T) {
		req := models.AmountRequest{AccountNumber: "1234567890", Amount: "50.75"}
		assert.NoError(t, vh.ValidateStruct(&req))
	})

	t.Run("rejects non-decimal and non-positive amounts", func(t *testing.T) {
		for _, amount := range []string{"abc", "-5", "0", "1,50"} {
			req := models.AmountRequest{AccountNumber: "1234567890", Amount: amount}
			err := vh.ValidateStruct(&req)
			assert.Error(t, err, "amount %q should be rejected", amount)
		}
	})

	t.Run("rejects malformed account numbers", func(t *testing.T) {
		for _, acct := range []string{"12345", "12345678901", "12345678ab", ""} {
			req := models.AmountRequest{AccountNumber: acct, Amount: "50.00"}
			err := vh.ValidateStruct(&req)
			assert.Error(t, err, "account %q should be rejected", acct)
		}
	})

	t.Run("validates a transfer request end to end", func(t *testing.T) {
		req := models.TransferRequest{
			FromAccount: "1234567890",
			ToAccount:   "0987654321",
			Amount:      "200.00",
			Description: "rent",
		}
		assert.NoError(t, vh.ValidateStruct(&req))
	})
}

func TestSendErrorResponse(t *testing.T) {
	t.Run("error response without validation errors", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendErrorResponse(w, "Something went wrong", http.StatusInternalServerError, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Something went wrong", response.Error)
		assert.Nil(t, response.Details)
	})

	t.Run("error response with validation errors", func(t *testing.T) {
		vh := NewValidationHelper()
		invalid := TestStruct{
			Name:  "J",
			Email: "invalid-email",
			Age:   16,
		}

		validationErr := vh.ValidateStruct(&invalid)
		assert.Error(t, validationErr)

		w := httptest.NewRecorder()
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, validationErr)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Validation failed", response.Error)
		assert.NotNil(t, response.Details)
		assert.Contains(t, response.Details, "Name")
		assert.Contains(t, response.Details, "Email")
		assert.Contains(t, response.Details, "Age")
	})

	t.Run("unauthorized error", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendErrorResponse(w, "Unauthorized access", http.StatusUnauthorized, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Unauthorized access", response.Error)
	})
}

func TestSendDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation error maps to 400", models.NewValidationError("amount", "must be positive"), http.StatusBadRequest},
		{"malformed document maps to 400", &models.MalformedDocumentError{Err: errors.New("bad xml")}, http.StatusBadRequest},
		{"not found maps to 404", models.NewNotFoundError("account", "1234567890"), http.StatusNotFound},
		{"insufficient funds maps to 422", &models.InsufficientFundsError{AccountNumber: "1234567890"}, http.StatusUnprocessableEntity},
		{"schema unavailable maps to 424", &models.SchemaUnavailableError{Path: "x.xsd"}, http.StatusFailedDependency},
		{"unknown error maps to 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SendDomainError(w, tc.err)

			assert.Equal(t, tc.status, w.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tc.status == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", response.Error)
			} else {
				assert.Equal(t, tc.err.Error(), response.Error)
			}
		})
	}
}

func TestNewValidationHelper(t *testing.T) {
	vh := NewValidationHelper()
	assert.NotNil(t, vh)
	assert.NotNil(t, vh.validator)
}
