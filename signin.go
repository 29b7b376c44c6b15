package signin

import (
	"context"

	"github.com/tinywasm/fmt"
	"golang.org/x/oauth2"
)

var (
	ErrRequired          = fmt.Err("field", "required")             // EN: Field Required          / ES: Campo Requerido
	ErrInvalidFormat     = fmt.Err("format", "invalid")             // EN: Format Invalid          / ES: Formato Inválido
	ErrTooShort          = fmt.Err("password", "short")             // EN: Password Short          / ES: Contraseña Corta
	ErrMismatch          = fmt.Err("password", "mismatch")          // EN: Password Mismatch       / ES: Contraseña No Coincide
	ErrInvalidOAuthState = fmt.Err("state", "invalid")              // EN: State Invalid           / ES: Estado Inválido
	ErrInFlight          = fmt.Err("sign", "in", "progress")        // EN: Sign In Progress        / ES: Inicio En Progreso
	ErrNoProvider        = fmt.Err("provider", "not", "configured") // EN: Provider Not Configured / ES: Proveedor No Configurado
)

// Account is the identity returned by a provider after sign-in.
type Account struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// Provider is the capability a screen uses for provider-based sign-in.
// SignIn returns (nil, nil) when the user cancels.
type Provider interface {
	SignIn(ctx context.Context) (*Account, error)
	SignOut(ctx context.Context) error
	CurrentAccount() *Account
}

type OAuthUserInfo struct {
	ID    string
	Email string
	Name  string
}

type OAuthProvider interface {
	Name() string
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	ExchangeCode(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	GetUserInfo(ctx context.Context, token *oauth2.Token) (OAuthUserInfo, error)
}

// ProviderError is a platform or OAuth failure reported to the user once.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }
