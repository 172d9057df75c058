package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Andr3sPonc3M/AskWorld/internal/models"
)

var emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

const passwordMinLen = 6

// ValidateRegister checks registration input and returns every violation.
func ValidateRegister(in *RegisterInput) *ValidationError {
	var errs []string

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" {
		errs = append(errs, "name is required")
	} else if n := utf8.RuneCountInString(in.Name); n < 2 || n > 50 {
		errs = append(errs, "name must be between 2 and 50 characters")
	}

	if !emailRe.MatchString(in.Email) {
		errs = append(errs, "please enter a valid email")
	}

	if len(in.Password) < passwordMinLen {
		errs = append(errs, "password must be at least 6 characters")
	} else if !strings.ContainsAny(in.Password, "0123456789") {
		errs = append(errs, "password must contain at least one number")
	}

	if in.Role != "" {
		if _, err := models.ParseRole(in.Role); err != nil {
			errs = append(errs, "invalid role")
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ValidateLogin checks that both credentials are present.
func ValidateLogin(email, password string) *ValidationError {
	var errs []string
	if strings.TrimSpace(email) == "" {
		errs = append(errs, "email is required")
	}
	if password == "" {
		errs = append(errs, "password is required")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
