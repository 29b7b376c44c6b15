package signin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

const microsoftUserInfoURL = "https://graph.microsoft.com/v1.0/me"

// MicrosoftProvider signs in work, school and personal Microsoft accounts.
type MicrosoftProvider struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// Tenant defaults to "common".
	Tenant string

	UserInfoURL string

	config *oauth2.Config
}

func (p *MicrosoftProvider) Name() string {
	return "microsoft"
}

func (p *MicrosoftProvider) ensureConfig() {
	if p.config != nil {
		return
	}
	tenant := p.Tenant
	if tenant == "" {
		tenant = "common"
	}
	p.config = &oauth2.Config{
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		RedirectURL:  p.RedirectURL,
		Scopes:       []string{"openid", "email", "profile", "User.Read"},
		Endpoint:     microsoft.AzureADEndpoint(tenant),
	}
}

func (p *MicrosoftProvider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	p.ensureConfig()
	return p.config.AuthCodeURL(state, opts...)
}

func (p *MicrosoftProvider) ExchangeCode(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	p.ensureConfig()
	return p.config.Exchange(ctx, code, opts...)
}

func (p *MicrosoftProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (OAuthUserInfo, error) {
	p.ensureConfig()
	infoURL := p.UserInfoURL
	if infoURL == "" {
		infoURL = microsoftUserInfoURL
	}

	client := p.config.Client(ctx, token)
	resp, err := client.Get(infoURL)
	if err != nil {
		return OAuthUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return OAuthUserInfo{}, &ProviderError{Code: "userinfo", Message: "unexpected status " + strconv.Itoa(resp.StatusCode)}
	}

	var data struct {
		ID                string `json:"id"`
		Email             string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
		Name              string `json:"displayName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return OAuthUserInfo{}, err
	}

	email := data.Email
	if email == "" {
		email = data.UserPrincipalName
	}

	return OAuthUserInfo{
		ID:    data.ID,
		Email: email,
		Name:  data.Name,
	}, nil
}
