package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/swiftalliance/backend/internal/models"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error   string            `json:"error"`             // Error message
	Details map[string]string `json:"details,omitempty"` // Validation details
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper with the domain tags
// registered: decimal_amount (positive decimal string) and account_number
// (10 digits).
func NewValidationHelper() *ValidationHelper {
	v := validator.New()

	v.RegisterValidation("decimal_amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})

	v.RegisterValidation("account_number", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 10 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	return &ValidationHelper{validator: v}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// SendErrorResponse sends a JSON error response
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResp := ErrorResponse{Error: message}
	if validationErr != nil {
		errorResp.Details = make(map[string]string)
		for _, err := range validationErr.(validator.ValidationErrors) {
			errorResp.Details[err.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", err.Tag())
		}
	}

	json.NewEncoder(w).Encode(errorResp)
}

// SendDomainError maps a domain error to its HTTP status and sends it.
// Unrecognized errors become an opaque 500.
func SendDomainError(w http.ResponseWriter, err error) {
	status := domainStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	SendErrorResponse(w, message, status, nil)
}

func domainStatus(err error) int {
	var (
		notFound     *models.NotFoundError
		validation   *models.ValidationError
		insufficient *models.InsufficientFundsError
		schemaGone   *models.SchemaUnavailableError
		malformed    *models.MalformedDocumentError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &insufficient):
		return http.StatusUnprocessableEntity
	case errors.As(err, &schemaGone):
		return http.StatusFailedDependency
	default:
		return http.StatusInternalServerError
	}
}
