package signin

// SignInData is validated by SignInModule on both frontend and backend.
type SignInData struct {
	Email    string
	Password string
}

// SignUpData is validated by SignUpModule.
type SignUpData struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

func (d *SignInData) toForm() *Form {
	f := NewForm()
	f.Set(FieldEmail, d.Email)
	f.Set(FieldPassword, d.Password)
	return f
}

func (d *SignUpData) toForm() *Form {
	f := NewForm()
	f.ToggleMode()
	f.Set(FieldEmail, d.Email)
	f.Set(FieldPassword, d.Password)
	f.Set(FieldName, d.Name)
	f.Set(FieldConfirmPassword, d.Confirm)
	return f
}
