package signin

import (
	"context"
	"net/http"
	"net/url"
	"sync"
)

// Consent sends the user to authURL and returns the query of the redirect
// back to the application.
type Consent interface {
	Authorize(ctx context.Context, authURL string) (url.Values, error)
}

// CallbackConsent hands the authorization URL to Open and waits for the
// provider to redirect to ServeHTTP. Only one authorization is pending at a
// time.
type CallbackConsent struct {
	Open func(ctx context.Context, authURL string) error

	mu      sync.Mutex
	pending chan url.Values
}

func (c *CallbackConsent) Authorize(ctx context.Context, authURL string) (url.Values, error) {
	ch := make(chan url.Values, 1)
	c.mu.Lock()
	c.pending = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		if c.pending == ch {
			c.pending = nil
		}
		c.mu.Unlock()
	}()

	if c.Open != nil {
		if err := c.Open(ctx, authURL); err != nil {
			return nil, err
		}
	}

	select {
	case q := <-ch:
		return q, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *CallbackConsent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	ch := c.pending
	c.pending = nil
	c.mu.Unlock()

	if ch == nil {
		http.Error(w, "no sign-in in progress", http.StatusConflict)
		return
	}
	ch <- r.URL.Query()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(`<p>You can close this window and return to the application.</p>`))
}
