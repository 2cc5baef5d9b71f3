package user

import "strings"

const MaxNameLength = 100

type Phone struct {
	value string
}

// NewPhone accepts bare digit strings, optionally prefixed with "+".
func NewPhone(s string) (Phone, error) {
	v := strings.TrimSpace(s)
	digits := strings.TrimPrefix(v, "+")
	if len(digits) < 10 || len(digits) > 15 {
		return Phone{}, ErrInvalidPhone
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Phone{}, ErrInvalidPhone
		}
	}
	return Phone{value: v}, nil
}

func (p Phone) Value() string { return p.value }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Name{}, ErrEmptyName
	}
	if len(v) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: v}, nil
}

func (n Name) Value() string { return n.value }

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Email{}, nil // optional until profile completion
	}
	at := strings.Index(v, "@")
	if at <= 0 || at == len(v)-1 || !strings.Contains(v[at+1:], ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) Value() string { return e.value }
