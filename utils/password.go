package utils

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var (
	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`\d`)
)

// ValidatePasswordStrength enforces the account password policy: at least
// 8 characters with one uppercase letter, one lowercase letter and one digit.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	if !upperRe.MatchString(password) {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		return errors.New("Password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		return errors.New("Password must contain at least one digit")
	}
	return nil
}
