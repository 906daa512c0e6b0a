// Package config holds runtime-adjustable settings that live outside the
// process environment: the pain.001 schema path and the institution logo.
// Server-level settings (port, redis, jwt) come straight from viper.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// AssetConfig points at operator-uploaded assets. Empty values mean "use the
// built-in default".
type AssetConfig struct {
	SchemaPath string `json:"schema_path,omitempty"`
	LogoPath   string `json:"logo_path,omitempty"`
}

// AssetStore persists AssetConfig as a small JSON file. A missing or corrupt
// file yields an empty config, never an error.
type AssetStore struct {
	mu      sync.Mutex
	path    string
	current AssetConfig
}

func NewAssetStore(path string) *AssetStore {
	s := &AssetStore{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[CONFIG] Asset config %s is unreadable, starting empty: %v", path, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.current); err != nil {
		log.Printf("[CONFIG] Asset config %s is corrupt, starting empty: %v", path, err)
		s.current = AssetConfig{}
	}
	return s
}

func (s *AssetStore) Get() AssetConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *AssetStore) SetSchemaPath(schemaPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.SchemaPath = schemaPath
	return s.persist()
}

func (s *AssetStore) SetLogoPath(logoPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.LogoPath = logoPath
	return s.persist()
}

func (s *AssetStore) persist() error {
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}
