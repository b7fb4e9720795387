package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"meetup-planner/core/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Identity is what a provider tells us about the signed-in person.
type Identity struct {
	Provider string
	Subject  string
	Email    string
	Name     string
}

type Provider interface {
	AuthCodeURL(state string) string
	Identify(ctx context.Context, code string) (*Identity, error)
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

type GoogleProvider struct {
	oauth *oauth2.Config
}

func NewGoogleProvider(cfg config.AuthConfig) *GoogleProvider {
	return &GoogleProvider{oauth: &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}}
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *GoogleProvider) Identify(ctx context.Context, code string) (*Identity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	resp, err := p.oauth.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned %s", resp.Status)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("userinfo has no id")
	}
	return &Identity{Provider: "google", Subject: info.ID, Email: info.Email, Name: info.Name}, nil
}
