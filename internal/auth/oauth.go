package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/chitieu/backend/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

// UserInfo is the subset of a federated profile we care about.
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider wraps an oauth2 configuration together with the userinfo
// endpoint of the identity provider.
type Provider struct {
	Name        string
	Config      *oauth2.Config
	userInfoURL string
}

// NewGoogle returns the Google login provider.
func NewGoogle(cfg *config.Config) Provider {
	return Provider{
		Name: "google",
		Config: &oauth2.Config{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.CallbackBase + "/google/callback",
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

// NewFacebook returns the Facebook login provider.
func NewFacebook(cfg *config.Config) Provider {
	return Provider{
		Name: "facebook",
		Config: &oauth2.Config{
			ClientID:     cfg.OAuth.Facebook.ClientID,
			ClientSecret: cfg.OAuth.Facebook.ClientSecret,
			RedirectURL:  cfg.OAuth.CallbackBase + "/facebook/callback",
			Scopes:       []string{"public_profile", "email"},
			Endpoint:     facebook.Endpoint,
		},
		userInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
	}
}

// AuthCodeURL returns the provider's consent page URL.
func (p Provider) AuthCodeURL(state string) string {
	return p.Config.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token.
func (p Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.Config.Exchange(ctx, code)
}

// FetchUserInfo loads the profile of the authenticated user.
func (p Provider) FetchUserInfo(ctx context.Context, token *oauth2.Token) (UserInfo, error) {
	client := p.Config.Client(ctx, token)

	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return UserInfo{}, fmt.Errorf("fetch %s profile: %w", p.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return UserInfo{}, fmt.Errorf("fetch %s profile: status %d: %s", p.Name, resp.StatusCode, body)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return UserInfo{}, fmt.Errorf("decode %s profile: %w", p.Name, err)
	}

	if info.ID == "" {
		return UserInfo{}, fmt.Errorf("%s profile contains no user ID", p.Name)
	}

	return info, nil
}
