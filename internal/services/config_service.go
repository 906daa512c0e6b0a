package services

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/swiftalliance/backend/internal/config"
	"github.com/swiftalliance/backend/internal/models"
	"github.com/swiftalliance/backend/internal/schema"
)

// ConfigService manages the operator-adjustable assets: the pain.001 schema
// used for validation and the institution logo served by the gateway.
// Uploads land under the assets directory; paths persist across restarts
// through the asset store.
type ConfigService struct {
	assets        *config.AssetStore
	validator     *ValidationHelper
	assetsDir     string
	defaultSchema string
}

// AssetStatus reports the effective asset configuration. SchemaPath is the
// path validation currently uses, configured or bundled.
type AssetStatus struct {
	SchemaPath       string   `json:"schema_path"`
	LogoPath         string   `json:"logo_path,omitempty"`
	AvailableSchemas []string `json:"available_schemas"`
}

func NewConfigService(assets *config.AssetStore, validator *ValidationHelper, assetsDir, defaultSchemaPath string) *ConfigService {
	return &ConfigService{
		assets:        assets,
		validator:     validator,
		assetsDir:     assetsDir,
		defaultSchema: defaultSchemaPath,
	}
}

// GetAssets reports the current asset configuration
// @Summary Get asset configuration
// @Description Show the schema and logo in effect plus every schema file available for selection
// @Tags config
// @Produce json
// @Success 200 {object} AssetStatus "Asset configuration"
// @Router /config/assets [get]
func (s *ConfigService) GetAssets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current := s.assets.Get()
	effective := current.SchemaPath
	if effective == "" {
		effective = s.defaultSchema
	}

	available, err := filepath.Glob(filepath.Join(s.assetsDir, "schemas", "*.xsd"))
	if err != nil {
		available = nil
	}

	json.NewEncoder(w).Encode(AssetStatus{
		SchemaPath:       effective,
		LogoPath:         current.LogoPath,
		AvailableSchemas: available,
	})
}

// SetSchemaPath points validation at a different schema file
// @Summary Set schema path
// @Description Switch pain.001 validation to the schema file at the given path
// @Tags config
// @Accept json
// @Produce json
// @Param request body models.SchemaPathRequest true "Schema path"
// @Success 200 {object} map[string]string "Schema path updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 424 {object} ErrorResponse "Schema not loadable"
// @Router /config/schema [put]
func (s *ConfigService) SetSchemaPath(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.SchemaPathRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	if _, err := schema.Load(req.SchemaPath); err != nil {
		SendDomainError(w, &models.SchemaUnavailableError{Path: req.SchemaPath, Err: err})
		return
	}

	if err := s.assets.SetSchemaPath(req.SchemaPath); err != nil {
		log.Printf("[CONFIG] Failed to persist schema path: %v", err)
		SendErrorResponse(w, "Failed to save configuration", http.StatusInternalServerError, nil)
		return
	}

	log.Printf("[CONFIG] Schema path set to %s", req.SchemaPath)
	json.NewEncoder(w).Encode(map[string]string{
		"message":     "Schema path updated",
		"schema_path": req.SchemaPath,
	})
}

// UploadSchema stores a new schema file and switches validation to it
// @Summary Upload schema
// @Description Store an XSD in the assets directory and make it the active validation schema
// @Tags config
// @Accept application/xml
// @Produce json
// @Param filename query string false "Stored file name, .xsd"
// @Param schema body string true "Raw XSD content"
// @Success 201 {object} map[string]string "Schema uploaded"
// @Failure 400 {object} ErrorResponse "Invalid schema"
// @Router /config/schema/upload [post]
func (s *ConfigService) UploadSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filename := sanitizeFileName(r.URL.Query().Get("filename"), "uploaded.xsd")
	if !strings.EqualFold(filepath.Ext(filename), ".xsd") {
		SendDomainError(w, models.NewValidationError("filename", "must end in .xsd"))
		return
	}

	data, ok := readUploadBody(w, r)
	if !ok {
		return
	}

	if _, err := schema.Parse(data); err != nil {
		SendDomainError(w, models.NewValidationError("schema", err.Error()))
		return
	}

	dir := filepath.Join(s.assetsDir, "schemas")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[CONFIG] Failed to create schema directory: %v", err)
		SendErrorResponse(w, "Failed to save schema file", http.StatusInternalServerError, nil)
		return
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("[CONFIG] Failed to write schema file: %v", err)
		SendErrorResponse(w, "Failed to save schema file", http.StatusInternalServerError, nil)
		return
	}

	if err := s.assets.SetSchemaPath(path); err != nil {
		log.Printf("[CONFIG] Failed to persist schema path: %v", err)
		SendErrorResponse(w, "Failed to save configuration", http.StatusInternalServerError, nil)
		return
	}

	log.Printf("[CONFIG] Schema uploaded to %s", path)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message":     "Schema uploaded",
		"schema_path": path,
	})
}

// UploadLogo stores the institution logo served on receipts and the UI
// @Summary Upload logo
// @Description Store a logo image in the assets directory and record it as the active logo
// @Tags config
// @Accept octet-stream
// @Produce json
// @Param filename query string false "Stored file name"
// @Param logo body string true "Raw image content"
// @Success 201 {object} map[string]string "Logo uploaded"
// @Failure 400 {object} ErrorResponse "Invalid image"
// @Router /config/logo/upload [post]
func (s *ConfigService) UploadLogo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filename := sanitizeFileName(r.URL.Query().Get("filename"), "logo.png")
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".svg":
	default:
		SendDomainError(w, models.NewValidationError("filename", "must end in .png, .jpg, .jpeg or .svg"))
		return
	}

	data, ok := readUploadBody(w, r)
	if !ok {
		return
	}

	path := filepath.Join(s.assetsDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("[CONFIG] Failed to write logo file: %v", err)
		SendErrorResponse(w, "Failed to save logo file", http.StatusInternalServerError, nil)
		return
	}

	if err := s.assets.SetLogoPath(path); err != nil {
		log.Printf("[CONFIG] Failed to persist logo path: %v", err)
		SendErrorResponse(w, "Failed to save configuration", http.StatusInternalServerError, nil)
		return
	}

	log.Printf("[CONFIG] Logo uploaded to %s", path)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message":   "Logo uploaded",
		"logo_path": path,
	})
}

// sanitizeFileName strips any path components from an upload name.
func sanitizeFileName(name, fallback string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fallback
	}
	return name
}

// readUploadBody reads a raw upload, capped at the house request limit.
// On failure it writes the error response and reports false.
func readUploadBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	data, err := io.ReadAll(r.Body)
	if err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return nil, false
	}
	if len(data) == 0 {
		SendDomainError(w, models.NewValidationError("body", "file content is required"))
		return nil, false
	}
	return data, true
}
