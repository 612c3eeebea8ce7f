package config

import (
	"fmt"
)

// weakSecrets are values that must never be used as the token-signing
// secret, with or without a trailing "123".
var weakSecrets = []string{"secret", "password", "test", "admin", "default"}

// ValidateJWTSecret enforces minimum strength for the token-signing
// secret: at least 32 characters (256 bits for HS256) and not a common
// placeholder value.
func ValidateJWTSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if len(secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters (256 bits), got %d", len(secret))
	}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			return fmt.Errorf("JWT_SECRET must not be a common weak value")
		}
	}
	return nil
}
