// File: /utils/validators.go
package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 20
	NicknameMaxLength = 10
)

// Every domain label must be non-empty, so "user@.com" and "a@b..com" fail.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@(?:[A-Za-z0-9\-]+\.)+[A-Za-z]{2,}$`)

func hasWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

func IsValidEmail(email string) bool {
	if hasWhitespace(email) {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidPassword requires 8-20 characters, no whitespace, and at least one
// lowercase letter, uppercase letter, digit and non-alphanumeric character.
func IsValidPassword(password string) bool {
	length := utf8.RuneCountInString(password)
	if length < PasswordMinLength || length > PasswordMaxLength {
		return false
	}
	if hasWhitespace(password) {
		return false
	}

	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)

	for _, char := range password {
		switch {
		case char >= 'A' && char <= 'Z':
			hasUpper = true
		case char >= 'a' && char <= 'z':
			hasLower = true
		case char >= '0' && char <= '9':
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

func IsValidNickname(nickname string) bool {
	length := utf8.RuneCountInString(nickname)
	if length == 0 || length > NicknameMaxLength {
		return false
	}
	return !hasWhitespace(nickname)
}
