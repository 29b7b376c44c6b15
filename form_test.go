package signin_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tinywasm/signin"
)

func fillSignUp(f *signin.Form) {
	f.Set(signin.FieldEmail, "ada@example.com")
	f.Set(signin.FieldPassword, "secret1")
	f.Set(signin.FieldName, "Ada")
	f.Set(signin.FieldConfirmPassword, "secret1")
}

func TestForm(t *testing.T) {
	t.Run("StartsInSignIn", func(t *testing.T) {
		f := signin.NewForm()
		if f.Mode() != signin.SignIn {
			t.Fatalf("expected SignIn, got %s", f.Mode())
		}
		want := []signin.Field{signin.FieldEmail, signin.FieldPassword}
		if got := f.Required(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("ToggleTwiceRestores", func(t *testing.T) {
		f := signin.NewForm()
		before := f.Required()

		if m := f.ToggleMode(); m != signin.SignUp {
			t.Fatalf("expected SignUp, got %s", m)
		}
		if n := len(f.Required()); n != 4 {
			t.Errorf("expected 4 required fields in SignUp, got %d", n)
		}
		if m := f.ToggleMode(); m != signin.SignIn {
			t.Fatalf("expected SignIn, got %s", m)
		}
		if got := f.Required(); !reflect.DeepEqual(got, before) {
			t.Errorf("expected %v, got %v", before, got)
		}
	})

	t.Run("ValuesSurviveToggle", func(t *testing.T) {
		f := signin.NewForm()
		f.Set(signin.FieldEmail, "ada@example.com")
		f.ToggleMode()
		f.ToggleMode()
		if v := f.Value(signin.FieldEmail); v != "ada@example.com" {
			t.Errorf("expected email to be kept, got %q", v)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		f := signin.NewForm()
		fillSignUp(f)
		f.ToggleMode()
		f.Reset()
		if f.Mode() != signin.SignIn || f.Value(signin.FieldEmail) != "" {
			t.Errorf("expected a fresh form after Reset")
		}
	})

	t.Run("ValidateReportsEveryField", func(t *testing.T) {
		f := signin.NewForm()
		f.ToggleMode()
		results := f.Validate()
		if len(results) != 4 {
			t.Fatalf("expected 4 results, got %d", len(results))
		}
		for _, r := range results {
			if r.Err != signin.ErrRequired {
				t.Errorf("%s: expected ErrRequired, got %v", r.Field, r.Err)
			}
		}
	})
}

func TestSubmit(t *testing.T) {
	t.Run("SignInSuccess", func(t *testing.T) {
		f := signin.NewForm()
		f.Set(signin.FieldEmail, "ada@example.com")
		f.Set(signin.FieldPassword, "secret1")
		n, err := f.Submit()
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if n.Kind != signin.KindSuccess || !strings.Contains(n.Message, "ada@example.com") {
			t.Errorf("unexpected notification %+v", n)
		}
	})

	t.Run("SignInIgnoresHiddenFields", func(t *testing.T) {
		f := signin.NewForm()
		f.Set(signin.FieldEmail, "ada@example.com")
		f.Set(signin.FieldPassword, "secret1")
		f.Set(signin.FieldConfirmPassword, "different")
		if _, err := f.Submit(); err != nil {
			t.Fatalf("expected hidden fields to be ignored, got %v", err)
		}
	})

	t.Run("SignUpSuccess", func(t *testing.T) {
		f := signin.NewForm()
		f.ToggleMode()
		fillSignUp(f)
		n, err := f.Submit()
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if n.Kind != signin.KindSuccess || !strings.Contains(n.Message, "Ada") {
			t.Errorf("unexpected notification %+v", n)
		}
		if n.TTL != signin.DefaultNotificationTTL {
			t.Errorf("expected default TTL, got %v", n.TTL)
		}
	})

	t.Run("SignUpSingleInvalidField", func(t *testing.T) {
		cases := []struct {
			field signin.Field
			value string
			kind  error
		}{
			{signin.FieldEmail, "not-an-email", signin.ErrInvalidFormat},
			{signin.FieldPassword, "abc", signin.ErrTooShort},
			{signin.FieldName, "", signin.ErrRequired},
			{signin.FieldConfirmPassword, "secret2", signin.ErrMismatch},
		}
		for _, c := range cases {
			t.Run(c.field.String(), func(t *testing.T) {
				f := signin.NewForm()
				f.ToggleMode()
				fillSignUp(f)
				f.Set(c.field, c.value)

				_, err := f.Submit()
				var fe *signin.FieldError
				if !errors.As(err, &fe) {
					t.Fatalf("expected *FieldError, got %v", err)
				}
				if fe.Field != c.field {
					t.Errorf("expected field %s, got %s", c.field, fe.Field)
				}
				if !errors.Is(err, c.kind) {
					t.Errorf("expected kind %v, got %v", c.kind, fe.Kind)
				}
				if fe.Message == "" {
					t.Errorf("expected a message for %s", c.field)
				}
			})
		}
	})

	t.Run("FailFastOrder", func(t *testing.T) {
		f := signin.NewForm()
		f.ToggleMode()
		_, err := f.Submit()
		var fe *signin.FieldError
		if !errors.As(err, &fe) || fe.Field != signin.FieldEmail {
			t.Fatalf("expected email to fail first, got %v", err)
		}
	})
}
