package signin

type Mode uint8

const (
	SignIn Mode = iota
	SignUp
)

func (m Mode) String() string {
	if m == SignUp {
		return "signup"
	}
	return "signin"
}

type Field uint8

const (
	FieldEmail Field = iota
	FieldPassword
	FieldName
	FieldConfirmPassword
)

func (f Field) String() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	case FieldName:
		return "name"
	case FieldConfirmPassword:
		return "confirmPassword"
	}
	return "unknown"
}

var (
	signInFields = []Field{FieldEmail, FieldPassword}
	signUpFields = []Field{FieldEmail, FieldPassword, FieldName, FieldConfirmPassword}
)

// Form holds the mode and the text of every field. Values survive a mode
// toggle; fields hidden in the current mode are neither required nor
// validated.
type Form struct {
	mode   Mode
	values [4]string
}

func NewForm() *Form {
	return &Form{mode: SignIn}
}

func (f *Form) Mode() Mode { return f.mode }

// ToggleMode flips between SignIn and SignUp and returns the new mode.
func (f *Form) ToggleMode() Mode {
	if f.mode == SignIn {
		f.mode = SignUp
	} else {
		f.mode = SignIn
	}
	return f.mode
}

func (f *Form) Set(field Field, text string) {
	if int(field) < len(f.values) {
		f.values[field] = text
	}
}

func (f *Form) Value(field Field) string {
	if int(field) < len(f.values) {
		return f.values[field]
	}
	return ""
}

// Required returns the fields validated in the current mode, in submit order.
func (f *Form) Required() []Field {
	src := signInFields
	if f.mode == SignUp {
		src = signUpFields
	}
	out := make([]Field, len(src))
	copy(out, src)
	return out
}

// Reset clears every value and returns to SignIn.
func (f *Form) Reset() {
	*f = Form{}
}

func (f *Form) validateField(field Field) ValidationResult {
	switch field {
	case FieldEmail:
		return ValidateEmail(f.values[FieldEmail])
	case FieldPassword:
		return ValidatePassword(f.values[FieldPassword])
	case FieldName:
		return ValidateName(f.values[FieldName])
	case FieldConfirmPassword:
		return ValidateConfirmPassword(f.values[FieldConfirmPassword], f.values[FieldPassword])
	}
	return invalid(field, ErrInvalidFormat, "Unknown field")
}

// Validate runs every validator of the current mode and returns one result
// per required field, for inline display.
func (f *Form) Validate() []ValidationResult {
	fields := f.Required()
	out := make([]ValidationResult, 0, len(fields))
	for _, field := range fields {
		out = append(out, f.validateField(field))
	}
	return out
}
