package signin

import (
	_ "github.com/tinywasm/fmt/dictionary"
	"github.com/tinywasm/form"
	"github.com/tinywasm/form/input"
)

var (
	SignInModule *signInModule
	SignUpModule *signUpModule
)

func init() {
	form.RegisterInput(
		input.Password("", "confirm"),
	)

	SignInModule = &signInModule{form: mustForm("signin", &SignInData{})}
	SignUpModule = &signUpModule{form: mustForm("signup", &SignUpData{})}
}

func mustForm(parentID string, s any) *form.Form {
	f, err := form.New(parentID, s)
	if err != nil {
		panic("signin: mustForm: " + err.Error())
	}
	return f
}
