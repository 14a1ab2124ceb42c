package util

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password with bcrypt.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// ValidatePassword checks basic strength rules before a password is accepted.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 150 {
		return errors.New("password must be between 8 and 150 characters")
	}
	if strings.Contains(password, " ") {
		return errors.New("password must not contain spaces")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one digit")
	}
	for _, common := range []string{"password", "123456", "qwerty"} {
		if strings.Contains(strings.ToLower(password), common) {
			return errors.New("password contains an easily guessable pattern")
		}
	}
	return nil
}
