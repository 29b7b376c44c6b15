package signin

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password the form accepts.
const MinPasswordLength = 6

const (
	msgEmailRequired    = "Please enter your email"
	msgEmailInvalid     = "Please enter a valid email"
	msgPasswordRequired = "Please enter your password"
	msgPasswordShort    = "Password must be at least 6 characters"
	msgNameRequired     = "Please enter your name"
	msgConfirmRequired  = "Please confirm your password"
	msgConfirmMismatch  = "Passwords do not match"
)

var validate = validator.New()

// ValidationResult is the verdict for one field. A zero Err means valid.
type ValidationResult struct {
	Field   Field
	Err     error
	Message string
}

func (r ValidationResult) Valid() bool { return r.Err == nil }

func ValidateEmail(text string) ValidationResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return invalid(FieldEmail, ErrRequired, msgEmailRequired)
	}
	if err := validate.Var(text, "email"); err != nil {
		return invalid(FieldEmail, ErrInvalidFormat, msgEmailInvalid)
	}
	return ValidationResult{Field: FieldEmail}
}

func ValidatePassword(text string) ValidationResult {
	if text == "" {
		return invalid(FieldPassword, ErrRequired, msgPasswordRequired)
	}
	if utf8.RuneCountInString(text) < MinPasswordLength {
		return invalid(FieldPassword, ErrTooShort, msgPasswordShort)
	}
	return ValidationResult{Field: FieldPassword}
}

func ValidateName(text string) ValidationResult {
	if strings.TrimSpace(text) == "" {
		return invalid(FieldName, ErrRequired, msgNameRequired)
	}
	return ValidationResult{Field: FieldName}
}

// ValidateConfirmPassword compares byte for byte; no trimming.
func ValidateConfirmPassword(text, password string) ValidationResult {
	if text == "" {
		return invalid(FieldConfirmPassword, ErrRequired, msgConfirmRequired)
	}
	if text != password {
		return invalid(FieldConfirmPassword, ErrMismatch, msgConfirmMismatch)
	}
	return ValidationResult{Field: FieldConfirmPassword}
}

func invalid(f Field, kind error, msg string) ValidationResult {
	return ValidationResult{Field: f, Err: kind, Message: msg}
}
