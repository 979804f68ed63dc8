// Package config loads service configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads tagged environment values into target, which must be a
// struct pointer.
func ParseEnv(target any) error {
	if target == nil {
		return fmt.Errorf("parse env: target is required")
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
