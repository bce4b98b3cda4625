package services

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/skillverse/internal/common"
)

// MinPasswordLength is the minimum password length in runes.
const MinPasswordLength = 8

// NormalizeEmail trims and lower-cases an email. Directory keys are always
// normalized.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateEmail checks that raw parses as a single address.
func ValidateEmail(raw string) error {
	email := NormalizeEmail(raw)
	if email == "" {
		return common.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", common.ErrInvalidEmail, raw)
	}
	return nil
}

// ValidatePassword enforces the password policy: at least
// MinPasswordLength characters and at least one digit.
func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return common.ErrWeakPassword
	}
	for _, r := range password {
		if unicode.IsDigit(r) {
			return nil
		}
	}
	return common.ErrWeakPassword
}

// ValidatePasswordReset applies the policy and requires the confirmation to
// match.
func ValidatePasswordReset(password, confirm string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if password != confirm {
		return common.ErrPasswordMismatch
	}
	return nil
}
