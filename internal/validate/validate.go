// Package validate holds the field-level rules applied to untrusted request
// payloads. Each function either returns itemized error strings and leaves
// the payload alone, or returns nothing and normalizes the payload in place
// (trim, lower-case email, upper-case SKU, clamp numeric ranges).
package validate

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	MinQuantity = 1
	MaxQuantity = 999
)

type RegisterPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

func Registration(in *RegisterPayload) []string {
	var errs []string
	errs = append(errs, nameErrors("First name", in.FirstName)...)
	errs = append(errs, nameErrors("Last name", in.LastName)...)
	errs = append(errs, emailErrors(in.Email)...)

	switch {
	case in.Password == "":
		errs = append(errs, "Password is required")
	case len(in.Password) < 6:
		errs = append(errs, "Password must be at least 6 characters long")
	case len(in.Password) > 100:
		errs = append(errs, "Password must be at most 100 characters long")
	}

	if len(errs) > 0 {
		return errs
	}
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	return nil
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks email shape and password presence only; length rules apply at
// registration, not here.
func Login(in *LoginPayload) []string {
	var errs []string
	errs = append(errs, emailErrors(in.Email)...)
	if in.Password == "" {
		errs = append(errs, "Password is required")
	}
	if len(errs) > 0 {
		return errs
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	return nil
}

type ProfilePayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// Profile applies the registration rules with an optional password: empty
// means "keep the current one".
func Profile(in *ProfilePayload) []string {
	var errs []string
	errs = append(errs, nameErrors("First name", in.FirstName)...)
	errs = append(errs, nameErrors("Last name", in.LastName)...)
	errs = append(errs, emailErrors(in.Email)...)

	if in.Password != "" {
		if len(in.Password) < 6 {
			errs = append(errs, "Password must be at least 6 characters long")
		} else if len(in.Password) > 100 {
			errs = append(errs, "Password must be at most 100 characters long")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	return nil
}

func nameErrors(field, v string) []string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return []string{field + " is required"}
	}
	if n := len([]rune(trimmed)); n < 2 || n > 50 {
		return []string{field + " must be between 2 and 50 characters long"}
	}
	return nil
}

func emailErrors(v string) []string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return []string{"Email is required"}
	}
	if !emailRe.MatchString(trimmed) {
		return []string{"Invalid email format"}
	}
	return nil
}
