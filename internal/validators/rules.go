package validators

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLength      = 4
	maxPasswordLength      = 20
	minAccountNumberLength = 5
	maxAccountNumberLength = 20
	minAgencyLength        = 3
	maxAgencyLength        = 10
	maxDescriptionLength   = 255
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}

// validEmail accepts a bare address only; display-name forms are rejected.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

func checkName(name string) error {
	if blank(name) {
		return ErrNameRequired
	}
	return nil
}

func checkEmail(email string) error {
	if blank(email) {
		return ErrEmailRequired
	}
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if !lengthBetween(password, minPasswordLength, maxPasswordLength) {
		return ErrPasswordLength
	}
	return nil
}

func checkDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
