package signin

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/oauth2"
)

// Flow runs the authorization-code flow with PKCE for one OAuthProvider and
// exposes it as a Provider.
type Flow struct {
	provider OAuthProvider
	states   *StateStore
	consent  Consent

	mu      sync.RWMutex
	current *Account
}

func NewFlow(p OAuthProvider, states *StateStore, consent Consent) *Flow {
	return &Flow{provider: p, states: states, consent: consent}
}

func (f *Flow) Name() string { return f.provider.Name() }

func (f *Flow) SignIn(ctx context.Context) (*Account, error) {
	name := f.provider.Name()
	state, verifier, err := f.states.Begin(name)
	if err != nil {
		return nil, &ProviderError{Code: "state_store", Message: err.Error(), Err: err}
	}

	q, err := f.consent.Authorize(ctx, f.provider.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)))
	if err != nil {
		_ = f.states.Discard(state)
		switch {
		case errors.Is(err, context.Canceled):
			return nil, nil
		case errors.Is(err, context.DeadlineExceeded):
			return nil, &ProviderError{Code: "timeout", Message: "sign-in timed out", Err: err}
		}
		return nil, &ProviderError{Code: "consent", Message: err.Error(), Err: err}
	}

	if code := q.Get("error"); code != "" {
		_ = f.states.Discard(state)
		if code == "access_denied" {
			return nil, nil
		}
		return nil, &ProviderError{Code: code, Message: q.Get("error_description")}
	}

	if q.Get("state") != state {
		_ = f.states.Discard(state)
		return nil, &ProviderError{Code: "invalid_state", Message: "sign-in response does not match the request", Err: ErrInvalidOAuthState}
	}
	verifier, err = f.states.Consume(state, name)
	if err != nil {
		return nil, &ProviderError{Code: "invalid_state", Message: "sign-in request expired", Err: err}
	}

	token, err := f.provider.ExchangeCode(ctx, q.Get("code"), oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, &ProviderError{Code: "exchange", Message: err.Error(), Err: err}
	}

	info, err := f.provider.GetUserInfo(ctx, token)
	if err != nil {
		return nil, &ProviderError{Code: "userinfo", Message: err.Error(), Err: err}
	}

	acc := &Account{DisplayName: info.Name, Email: info.Email}
	if acc.DisplayName == "" {
		acc.DisplayName = info.Email
	}

	f.mu.Lock()
	f.current = acc
	f.mu.Unlock()
	return acc, nil
}

func (f *Flow) SignOut(ctx context.Context) error {
	f.mu.Lock()
	f.current = nil
	f.mu.Unlock()
	return nil
}

func (f *Flow) CurrentAccount() *Account {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current == nil {
		return nil
	}
	acc := *f.current
	return &acc
}
