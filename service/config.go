package service

import (
	"errors"

	"github.com/0xalexb/hjarta-arrays/service/middleware"
)

// DefaultAddress is the default address for the document service.
const DefaultAddress = ":8080"

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrNegativeMaxBodyBytes is returned when the request body limit is negative.
var ErrNegativeMaxBodyBytes = errors.New("max body bytes must not be negative")

// ErrListenFailed is returned when the server fails to listen on the configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// ErrEmptyName is returned when the service name is empty.
var ErrEmptyName = errors.New("service name must not be empty")

// ErrNilHandler is returned when a nil http.Handler is provided.
var ErrNilHandler = errors.New("handler must not be nil")

// Config holds the configuration of a document service.
type Config struct {
	Address      string `yaml:"address"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// SetDefaults fills in the listen address and the request body limit.
// It implements config.Defaulter.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = DefaultAddress
		changed = true
	}

	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = middleware.DefaultMaxRequestSize
		changed = true
	}

	return changed
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if c.MaxBodyBytes < 0 {
		return ErrNegativeMaxBodyBytes
	}

	return nil
}
