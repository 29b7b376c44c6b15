package main

import (
	"context"
	"errors"
	"html"
	"log"
	"net/http"
	"sync"

	"github.com/tinywasm/signin"
)

type app struct {
	cfg     Config
	consent *signin.CallbackConsent
	toasts  *signin.Toasts
	screen  *signin.Screen

	// mu serialises form edits; the screen itself is single-user.
	mu sync.Mutex
}

// authURLKey carries the channel that receives one tap's consent URL.
type authURLKey struct{}

func newApp(cfg Config, states *signin.StateStore, oauth signin.OAuthProvider) *app {
	a := &app{
		cfg:    cfg,
		toasts: signin.NewToasts(),
	}
	a.consent = &signin.CallbackConsent{Open: a.openURL}

	var provider signin.Provider
	if oauth != nil {
		provider = signin.NewFlow(oauth, states, a.consent)
		signin.SignInModule.OfferProviders(oauth.Name())
	}
	a.screen = signin.NewScreen(provider, a.toasts)
	return a
}

func (a *app) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", a.handleShow)
	mux.HandleFunc("POST /", a.handleSubmit)
	mux.HandleFunc("GET /toggle", a.handleToggle)
	mux.HandleFunc("GET /oauth/google", a.handleGoogle)
	mux.Handle("GET /oauth/callback", a.consent)
	mux.HandleFunc("POST /signout", a.handleSignOut)
	return mux
}

// openURL passes the consent URL to the request that started the sign-in.
func (a *app) openURL(ctx context.Context, authURL string) error {
	urls, ok := ctx.Value(authURLKey{}).(chan string)
	if !ok {
		return errors.New("no request waiting for the consent url")
	}
	select {
	case urls <- authURL:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *app) handleShow(w http.ResponseWriter, r *http.Request) {
	a.render(w, "")
}

func (a *app) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	a.screen.SetField(signin.FieldEmail, r.PostFormValue("email"))
	a.screen.SetField(signin.FieldPassword, r.PostFormValue("password"))
	a.screen.SetField(signin.FieldName, r.PostFormValue("name"))
	a.screen.SetField(signin.FieldConfirmPassword, r.PostFormValue("confirm"))
	err := a.screen.Submit()
	a.mu.Unlock()

	var fe *signin.FieldError
	if errors.As(err, &fe) {
		a.render(w, fe.Message)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *app) handleToggle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	mode := a.screen.ToggleMode()
	a.mu.Unlock()
	log.Printf("mode: %s", mode)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleGoogle starts a sign-in and redirects to the consent page. The
// sign-in outlives this request once the browser has been redirected; if
// the browser leaves first, the sign-in is cancelled and its state dropped.
func (a *app) handleGoogle(w http.ResponseWriter, r *http.Request) {
	urls := make(chan string, 1)
	ctx := context.WithValue(context.WithoutCancel(r.Context()), authURLKey{}, urls)
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)

	done := make(chan error, 1)
	go func() {
		defer cancel()
		acc, err := a.screen.SignInWithProvider(ctx)
		switch {
		case errors.Is(err, signin.ErrInFlight):
		case err != nil:
			log.Printf("provider sign-in: %v", err)
		case acc == nil:
			log.Printf("provider sign-in cancelled")
		default:
			log.Printf("provider sign-in: %s", acc.Email)
		}
		done <- err
	}()

	select {
	case authURL := <-urls:
		if r.Context().Err() != nil {
			cancel()
			<-done
			return
		}
		http.Redirect(w, r, authURL, http.StatusFound)
	case <-done:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case <-r.Context().Done():
		cancel()
		<-done
	}
}

func (a *app) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := a.screen.SignOut(r.Context()); err != nil {
		log.Printf("sign out: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *app) render(w http.ResponseWriter, inline string) {
	a.mu.Lock()
	mode := a.screen.Form().Mode()
	a.mu.Unlock()

	var body string
	if mode == signin.SignUp {
		body = signin.SignUpModule.RenderHTML()
	} else {
		body = signin.SignInModule.RenderHTML()
	}
	if inline != "" {
		body = `<p class="error">` + html.EscapeString(inline) + `</p>` + body
	}
	if n, ok := a.toasts.Current(); ok {
		body = `<div class="toast ` + n.Kind.String() + `">` + html.EscapeString(n.Message) + `</div>` + body
	}
	if acc := a.screen.CurrentAccount(); acc != nil {
		body += `<form method="post" action="/signout"><button>Sign out ` + html.EscapeString(acc.Email) + `</button></form>`
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<!doctype html><title>Sign in</title>" + body))
}
