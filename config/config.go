/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rclarkdev/CosmosRepository/errors"
)

// Environment variable names recognized by FromEnv.
const (
	EnvEndpoint = "COSMOS_ENDPOINT"
	EnvKey      = "COSMOS_KEY"
	EnvDatabase = "COSMOS_DATABASE"
)

// Settings holds the process-wide store configuration, loaded once at
// startup and handed to the cosmos store constructor.
type Settings struct {
	// Endpoint is the account endpoint URL.
	Endpoint string `yaml:"endpoint"`

	// Key is the account master key.
	Key string `yaml:"key"`

	// Database is the database name containing the containers.
	Database string `yaml:"database"`
}

// Load reads settings from a YAML file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// FromEnv reads settings from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func FromEnv() (*Settings, error) {
	_ = godotenv.Load()

	s := Settings{
		Endpoint: os.Getenv(EnvEndpoint),
		Key:      os.Getenv(EnvKey),
		Database: os.Getenv(EnvDatabase),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that all required settings are present.
func (s *Settings) Validate() error {
	if s.Endpoint == "" {
		return errors.NewValidationError("endpoint", "must not be empty")
	}
	if s.Key == "" {
		return errors.NewValidationError("key", "must not be empty")
	}
	if s.Database == "" {
		return errors.NewValidationError("database", "must not be empty")
	}
	return nil
}
