package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidRole    = errors.New("invalid role")
	ErrInvalidContact = errors.New("invalid contact number")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")

	ErrNotProvider           = errors.New("account is not a provider")
	ErrInvalidProviderStatus = errors.New("invalid provider status")
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	contactRegex = regexp.MustCompile(`^[0-9+\-()\s]{7,20}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type ContactNumber struct {
	value string
}

func NewContactNumber(s string) (ContactNumber, error) {
	s = strings.TrimSpace(s)
	if !contactRegex.MatchString(s) {
		return ContactNumber{}, ErrInvalidContact
	}
	return ContactNumber{value: s}, nil
}

func (c ContactNumber) Value() string {
	return c.value
}
