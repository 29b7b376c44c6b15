package signin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleScopes are requested when GoogleProvider.Scopes is empty.
var GoogleScopes = []string{"email", "profile"}

type GoogleProvider struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	// Endpoint and UserInfoURL default to Google's.
	Endpoint    oauth2.Endpoint
	UserInfoURL string

	config *oauth2.Config
}

func (p *GoogleProvider) Name() string {
	return "google"
}

func (p *GoogleProvider) ensureConfig() {
	if p.config != nil {
		return
	}
	scopes := p.Scopes
	if len(scopes) == 0 {
		scopes = GoogleScopes
	}
	endpoint := p.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = google.Endpoint
	}
	p.config = &oauth2.Config{
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		RedirectURL:  p.RedirectURL,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}
}

func (p *GoogleProvider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	p.ensureConfig()
	return p.config.AuthCodeURL(state, opts...)
}

func (p *GoogleProvider) ExchangeCode(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	p.ensureConfig()
	return p.config.Exchange(ctx, code, opts...)
}

func (p *GoogleProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (OAuthUserInfo, error) {
	p.ensureConfig()
	infoURL := p.UserInfoURL
	if infoURL == "" {
		infoURL = googleUserInfoURL
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
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return OAuthUserInfo{}, err
	}

	return OAuthUserInfo{
		ID:    data.ID,
		Email: data.Email,
		Name:  data.Name,
	}, nil
}
