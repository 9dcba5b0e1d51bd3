package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/chitieu/backend/internal/auth"
	"github.com/chitieu/backend/internal/config"
	"github.com/chitieu/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const oauthStateCookie = "oauth_state"

// RegisterOAuthRoutes registers the federated login entry points and
// callbacks. These are the only routes besides register/login that do
// not require a bearer token.
func RegisterOAuthRoutes(r *gin.RouterGroup, cfg *config.Config) {
	google := auth.NewGoogle(cfg)
	facebook := auth.NewFacebook(cfg)

	r.GET("/google", redirectToProvider(google))
	r.GET("/google/callback", providerCallback(cfg, google))
	r.GET("/facebook", redirectToProvider(facebook))
	r.GET("/facebook/callback", providerCallback(cfg, facebook))
}

func newState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func redirectToProvider(p auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := newState()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": models.ErrGeneral.Error()})
			return
		}

		c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
		c.Redirect(http.StatusFound, p.AuthCodeURL(state))
	}
}

// providerCallback finishes the code flow: it exchanges the code,
// loads the profile, finds or creates the user and redirects back to
// the frontend with a freshly issued token.
func providerCallback(cfg *config.Config, p auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		fail := func(reason string) {
			c.Redirect(http.StatusFound, fmt.Sprintf("%s/oauth/callback?error=%s", cfg.FrontendURL, url.QueryEscape(reason)))
		}

		state, err := c.Cookie(oauthStateCookie)
		if err != nil || state == "" || c.Query("state") != state {
			fail("invalid_state")
			return
		}
		c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

		code := c.Query("code")
		if code == "" {
			fail("missing_code")
			return
		}

		oauthToken, err := p.Exchange(c.Request.Context(), code)
		if err != nil {
			log.Error().Err(err).Str("provider", p.Name).Msg("OAuth code exchange failed")
			fail("exchange_failed")
			return
		}

		info, err := p.FetchUserInfo(c.Request.Context(), oauthToken)
		if err != nil {
			log.Error().Err(err).Str("provider", p.Name).Msg("OAuth profile fetch failed")
			fail("profile_failed")
			return
		}

		user, err := findOrCreateFederatedUser(p.Name, info)
		if err != nil {
			log.Error().Err(err).Str("provider", p.Name).Msg("federated user lookup failed")
			fail("user_failed")
			return
		}

		token, err := auth.GenerateToken(cfg.JWT.Secret, user.ID, cfg.JWT.Expiry())
		if err != nil {
			log.Error().Err(err).Msg("token generation failed")
			fail("token_failed")
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("%s/oauth/callback?token=%s", cfg.FrontendURL, url.QueryEscape(token)))
	}
}

func findOrCreateFederatedUser(provider string, info auth.UserInfo) (models.User, error) {
	var user models.User

	column := "google_id"
	if provider == models.ProviderFacebook {
		column = "facebook_id"
	}

	err := models.DB.Where(fmt.Sprintf("%s = ?", column), info.ID).First(&user).Error
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, err
	}

	// Facebook profiles may carry no email address. The email column
	// is unique, so every account still needs a distinct value.
	email := info.Email
	if email == "" {
		email = fmt.Sprintf("%s.%s@login.chitieu.local", provider, info.ID)
	}

	user = models.User{
		Name:     info.Name,
		Email:    email,
		Provider: provider,
	}

	if provider == models.ProviderFacebook {
		user.FacebookID = info.ID
	} else {
		user.GoogleID = info.ID
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
