package users

import (
	"errors"
	"regexp"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dmitrijs2005/authservice/internal/common"
)

// usernameRx is the historical username rule: alphanumeric plus
// underscore, at least three characters.
var usernameRx = regexp.MustCompile(`^[a-zA-Z0-9_]{3,}$`)

// validateSignup checks the signup input shape. The first failing
// field wins, in the order username, email, password.
func validateSignup(username, password, email string) error {
	if err := validation.Validate(username,
		validation.Required,
		validation.Match(usernameRx),
	); err != nil {
		return common.ErrorInvalidUsername
	}

	if err := validation.Validate(email,
		validation.Required,
		is.Email,
	); err != nil {
		return common.ErrorInvalidEmail
	}

	if err := validation.Validate(password,
		validation.Required,
		validation.By(strongPassword),
	); err != nil {
		return common.ErrorWeakPassword
	}

	return nil
}

// strongPassword requires at least 8 characters including one
// uppercase letter, one lowercase letter and one digit.
func strongPassword(value interface{}) error {
	password, _ := value.(string)
	if len(password) < 8 {
		return errors.New("must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("must contain an uppercase letter, a lowercase letter and a digit")
	}

	return nil
}
