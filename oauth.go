package signin

import (
	"database/sql"
	"errors"
	"time"

	"github.com/tinywasm/unixid"
	"golang.org/x/oauth2"
)

// DefaultStateTTL bounds how long a user may take on the consent page.
const DefaultStateTTL = 10 * time.Minute

// StateStore keeps pending OAuth states with their PKCE verifiers.
// A state is single-use and bound to the provider that issued it.
type StateStore struct {
	exec  Executor
	ttl   time.Duration
	newID func() string
}

func NewStateStore(exec Executor, ttl time.Duration) (*StateStore, error) {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	if err := runMigrations(exec); err != nil {
		return nil, err
	}
	u, err := unixid.NewUnixID()
	if err != nil {
		return nil, err
	}
	return &StateStore{exec: exec, ttl: ttl, newID: u.GetNewID}, nil
}

// Begin records a new state for provider and returns it with its verifier.
func (s *StateStore) Begin(provider string) (state, verifier string, err error) {
	state = s.newID()
	verifier = oauth2.GenerateVerifier()

	now := time.Now().Unix()
	if err := s.exec.Exec(
		"INSERT INTO signin_oauth_states (state, provider, verifier, expires_at, created_at) VALUES (?, ?, ?, ?, ?)",
		state, provider, verifier, now+int64(s.ttl/time.Second), now,
	); err != nil {
		return "", "", err
	}
	return state, verifier, nil
}

// Consume deletes state and returns its verifier. The row is removed even
// when it has expired so it can never be replayed.
func (s *StateStore) Consume(state, provider string) (string, error) {
	var expiresAt int64
	var dbProvider, verifier string
	err := s.exec.QueryRow(
		"SELECT expires_at, provider, verifier FROM signin_oauth_states WHERE state = ?", state,
	).Scan(&expiresAt, &dbProvider, &verifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidOAuthState
		}
		return "", err
	}

	if dbProvider != provider {
		return "", ErrInvalidOAuthState
	}

	if err := s.exec.Exec("DELETE FROM signin_oauth_states WHERE state = ?", state); err != nil {
		return "", err
	}

	if expiresAt < time.Now().Unix() {
		return "", ErrInvalidOAuthState
	}
	return verifier, nil
}

// Discard drops a state that will never be completed, e.g. after a cancel.
func (s *StateStore) Discard(state string) error {
	return s.exec.Exec("DELETE FROM signin_oauth_states WHERE state = ?", state)
}

func (s *StateStore) PurgeExpired() error {
	return s.exec.Exec("DELETE FROM signin_oauth_states WHERE expires_at < ?", time.Now().Unix())
}
