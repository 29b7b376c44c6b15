package signin_test

import (
	"context"
	"database/sql"
	"net/url"
	"sync"
	"testing"

	"github.com/tinywasm/signin"
	"golang.org/x/oauth2"
	_ "modernc.org/sqlite"
)

func newTestStates(t *testing.T) *signin.StateStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		db.Close()
	})
	states, err := signin.NewStateStore(signin.DBExecutor{DB: db}, 0)
	if err != nil {
		t.Fatalf("NewStateStore failed: %v", err)
	}
	return states
}

// recorder collects every notification the screen emits.
type recorder struct {
	mu  sync.Mutex
	got []signin.Notification
}

func (r *recorder) Notify(n signin.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recorder) all() []signin.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]signin.Notification(nil), r.got...)
}

// fakeProvider returns a fixed outcome. When block is set, SignIn waits on
// it before returning.
type fakeProvider struct {
	account    *signin.Account
	err        error
	signOutErr error
	block      chan struct{}

	mu      sync.Mutex
	calls   int
	current *signin.Account
}

func (p *fakeProvider) SignIn(ctx context.Context) (*signin.Account, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.block != nil {
		<-p.block
	}
	if p.err == nil && p.account != nil {
		p.mu.Lock()
		p.current = p.account
		p.mu.Unlock()
	}
	return p.account, p.err
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.signOutErr != nil {
		return p.signOutErr
	}
	p.current = nil
	return nil
}

func (p *fakeProvider) CurrentAccount() *signin.Account {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type MockProvider struct {
	NameVal         string
	ExchangeCodeVal *oauth2.Token
	UserInfoVal     signin.OAuthUserInfo

	codes []string
}

func (m *MockProvider) Name() string { return m.NameVal }
func (m *MockProvider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return "http://mock/auth?state=" + state
}
func (m *MockProvider) ExchangeCode(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	m.codes = append(m.codes, code)
	return m.ExchangeCodeVal, nil
}
func (m *MockProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (signin.OAuthUserInfo, error) {
	return m.UserInfoVal, nil
}

// consentFunc answers the consent step with the state found in authURL.
type consentFunc func(ctx context.Context, state string) (url.Values, error)

func (f consentFunc) Authorize(ctx context.Context, authURL string) (url.Values, error) {
	u, err := url.Parse(authURL)
	if err != nil {
		return nil, err
	}
	return f(ctx, u.Query().Get("state"))
}

func approve(code string) consentFunc {
	return func(ctx context.Context, state string) (url.Values, error) {
		return url.Values{"state": {state}, "code": {code}}, nil
	}
}
