package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"marketplace-core/internal/pkg/errs"
)

const MaxDisplayNameLength = 80

var (
	ErrInvalidEmail       = errs.Validation("invalid email format")
	ErrInvalidRole        = errs.Validation("invalid role")
	ErrEmptyDisplayName   = errs.Validation("display name cannot be empty")
	ErrDisplayNameTooLong = errs.Validation("display name exceeds maximum length")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DisplayName{}, ErrEmptyDisplayName
	}
	if utf8.RuneCountInString(s) > MaxDisplayNameLength {
		return DisplayName{}, ErrDisplayNameTooLong
	}
	return DisplayName{value: s}, nil
}

func (d DisplayName) Value() string {
	return d.value
}
