package signin

import (
	"context"
	"errors"

	"golang.org/x/sync/semaphore"
)

// Screen is the authentication screen controller. It owns the form, talks
// to an injected Provider and reports outcomes through a Notifier.
type Screen struct {
	form     *Form
	provider Provider
	notifier Notifier
	inFlight *semaphore.Weighted
}

// NewScreen builds a screen. provider may be nil when provider-based
// sign-in is not offered.
func NewScreen(provider Provider, notifier Notifier) *Screen {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	return &Screen{
		form:     NewForm(),
		provider: provider,
		notifier: notifier,
		inFlight: semaphore.NewWeighted(1),
	}
}

func (s *Screen) Form() *Form { return s.form }

func (s *Screen) SetField(f Field, text string) { s.form.Set(f, text) }

func (s *Screen) ToggleMode() Mode { return s.form.ToggleMode() }

// Submit validates the form. A valid form produces a success notification;
// an invalid one returns the *FieldError for inline display and notifies
// nothing.
func (s *Screen) Submit() error {
	n, err := s.form.Submit()
	if err != nil {
		return err
	}
	s.notifier.Notify(n)
	return nil
}

// SignInWithProvider runs the provider sign-in. While one attempt is in
// flight further calls return ErrInFlight and do nothing else. A cancelled
// sign-in returns (nil, nil) without notifying.
func (s *Screen) SignInWithProvider(ctx context.Context) (*Account, error) {
	if s.provider == nil {
		return nil, ErrNoProvider
	}
	if !s.inFlight.TryAcquire(1) {
		return nil, ErrInFlight
	}
	defer s.inFlight.Release(1)

	acc, err := s.provider.SignIn(ctx)
	if err != nil {
		s.notifier.Notify(Failure("Sign in failed: " + providerMessage(err)))
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}
	s.notifier.Notify(Success("Welcome " + acc.DisplayName + "!"))
	return acc, nil
}

func (s *Screen) SignOut(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}
	if err := s.provider.SignOut(ctx); err != nil {
		s.notifier.Notify(Failure("Sign out failed: " + providerMessage(err)))
		return err
	}
	return nil
}

func (s *Screen) CurrentAccount() *Account {
	if s.provider == nil {
		return nil
	}
	return s.provider.CurrentAccount()
}

func providerMessage(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		if pe.Message != "" {
			return pe.Message
		}
		return pe.Code
	}
	return err.Error()
}
