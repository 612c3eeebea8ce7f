package entity

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// minUsernameLength defines the minimum allowed length for usernames.
	minUsernameLength = 3

	// maxUsernameLength defines the maximum allowed length for usernames
	// to keep index keys bounded.
	maxUsernameLength = 64

	// maxDisplayNameLength defines the maximum allowed length for display names.
	maxDisplayNameLength = 128

	// minPasswordLength defines the minimum allowed password length.
	minPasswordLength = 8

	// maxPasswordLength caps passwords at bcrypt's input limit; bcrypt silently
	// truncates beyond 72 bytes, so longer inputs would weaken the hash.
	maxPasswordLength = 72
)

// ValidateUsername validates the format of a username.
// Usernames are 3-64 characters of letters, digits, '.', '_' or '-'.
// Returns a ValidationError if the username is invalid or empty.
func ValidateUsername(username string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if len(username) < minUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("username must be at least %d characters", minUsernameLength),
		}
	}
	if len(username) > maxUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("username must not exceed %d characters", maxUsernameLength),
		}
	}
	for _, r := range username {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if strings.ContainsRune("._-", r) {
			continue
		}
		return &ValidationError{
			Field:   "username",
			Message: "username may only contain letters, digits, '.', '_' and '-'",
		}
	}
	return nil
}

// ValidatePassword validates the length bounds of a plain-text password.
// The content of the password is not otherwise restricted.
func ValidatePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < minPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength),
		}
	}
	if len(password) > maxPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must not exceed %d characters", maxPasswordLength),
		}
	}
	return nil
}

// ValidateDisplayName validates the length of a display name.
// Display names are optional; empty is allowed.
func ValidateDisplayName(name string) error {
	if len(name) > maxDisplayNameLength {
		return &ValidationError{
			Field:   "fullname",
			Message: fmt.Sprintf("display name must not exceed %d characters", maxDisplayNameLength),
		}
	}
	return nil
}
