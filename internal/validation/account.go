package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// EmailPattern - упрощенная проверка формата email: local@domain.tld без пробелов
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLen минимальная длина пароля в символах
	MinPasswordLen = 6
	// MaxFullNameLen максимальная длина имени
	MaxFullNameLen = 100
)

// Form errors carry the messages shown to the user.
var (
	ErrMissingFields    = errors.New("Please fill in all fields.")
	ErrInvalidEmail     = errors.New("Please enter a valid email address.")
	ErrPasswordTooShort = fmt.Errorf("Password must be at least %d characters long.", MinPasswordLen)
	ErrPasswordMismatch = errors.New("Passwords do not match.")
	ErrFullNameTooLong  = fmt.Errorf("Full name must not exceed %d characters.", MaxFullNameLen)
)

// Required checks that none of the values is blank.
func Required(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	return nil
}

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingFields
	}
	if !EmailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
// Длина считается в символах, а не в байтах
func ValidatePassword(password string) error {
	if password == "" {
		return ErrMissingFields
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateFullName проверяет отображаемое имя
func ValidateFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrMissingFields
	}
	if utf8.RuneCountInString(fullName) > MaxFullNameLen {
		return ErrFullNameTooLong
	}
	return nil
}

// ValidateNewPassword checks a password together with its confirmation,
// the way the sign-up and reset forms do.
func ValidateNewPassword(password, confirm string) error {
	if err := Required(password, confirm); err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return ValidatePassword(password)
}

// ValidateSignup checks the whole sign-up form.
func ValidateSignup(fullName, email, password, confirm string) error {
	if err := Required(fullName, email, password, confirm); err != nil {
		return err
	}
	if err := ValidateFullName(fullName); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidateNewPassword(password, confirm)
}
