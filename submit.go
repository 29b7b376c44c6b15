package signin

import "strings"

// FieldError reports the first field that blocked a submit.
type FieldError struct {
	Field   Field
	Kind    error
	Message string
}

func (e *FieldError) Error() string {
	return e.Field.String() + ": " + e.Message
}

func (e *FieldError) Unwrap() error { return e.Kind }

// Submit validates the current mode's fields in order and stops at the
// first failure. On success it returns the notification to show; it never
// calls the network or stores anything.
func (f *Form) Submit() (Notification, error) {
	for _, field := range f.Required() {
		if r := f.validateField(field); !r.Valid() {
			return Notification{}, &FieldError{Field: r.Field, Kind: r.Err, Message: r.Message}
		}
	}
	email := strings.TrimSpace(f.values[FieldEmail])
	if f.mode == SignUp {
		return Success("Account created for " + strings.TrimSpace(f.values[FieldName])), nil
	}
	return Success("Signed in as " + email), nil
}
