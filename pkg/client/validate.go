package client

import (
	"errors"
	"regexp"
	"unicode"
)

// Pre-flight validation mirrors the signup form's rules. It exists for fast
// feedback only; the server enforces the same rules authoritatively.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrNameLength   = errors.New("username must be between 3 and 20 characters")
	ErrWeakPassword = errors.New("password must be at least 8 characters and contain a letter and a digit")
	ErrInvalidEmail = errors.New("please enter a valid email address")
)

// ValidateName checks the 3–20 character username rule.
func ValidateName(name string) error {
	if len(name) < 3 || len(name) > 20 {
		return ErrNameLength
	}
	return nil
}

// ValidatePassword checks length >= 8 with at least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
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
		return ErrWeakPassword
	}
	return nil
}

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateSignup runs all three checks and returns the first failure.
func ValidateSignup(name, email, password string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	return ValidateEmail(email)
}
