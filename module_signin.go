package signin

import "github.com/tinywasm/form"

type signInModule struct {
	form      *form.Form
	providers []string
}

func (m *signInModule) HandlerName() string { return "signin" }
func (m *signInModule) ModuleTitle() string { return "Sign In" }

// OfferProviders sets the provider buttons shown under the form.
func (m *signInModule) OfferProviders(names ...string) {
	m.providers = append([]string(nil), names...)
}

// ValidateData reports the first failing field as a *FieldError before
// applying the form's own input rules.
func (m *signInModule) ValidateData(action byte, data ...any) error {
	if len(data) > 0 {
		if d, ok := data[0].(*SignInData); ok {
			if _, err := d.toForm().Submit(); err != nil {
				return err
			}
		}
	}
	return m.form.ValidateData(action, data...)
}
