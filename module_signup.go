package signin

import "github.com/tinywasm/form"

type signUpModule struct {
	form *form.Form
}

func (m *signUpModule) HandlerName() string { return "signup" }
func (m *signUpModule) ModuleTitle() string { return "Sign Up" }

// ValidateData reports the first failing field as a *FieldError before
// applying the form's own input rules.
func (m *signUpModule) ValidateData(action byte, data ...any) error {
	if len(data) > 0 {
		if d, ok := data[0].(*SignUpData); ok {
			if _, err := d.toForm().Submit(); err != nil {
				return err
			}
		}
	}
	return m.form.ValidateData(action, data...)
}
