package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProfile is the subset of the provider's userinfo the bridge
// consumes.
type GoogleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleProvider abstracts the consent redirect and code exchange so the
// bridge can be tested without talking to Google.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*GoogleProfile, error)
}

type GoogleOAuthProvider struct {
	Config     *oauth2.Config
	HTTPClient *http.Client
}

func NewGoogleOAuthProvider(clientID, clientSecret, callbackURL string) *GoogleOAuthProvider {
	return &GoogleOAuthProvider{
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether Google sign-in credentials were supplied.
func (p *GoogleOAuthProvider) Configured() bool {
	return p.Config.ClientID != "" && p.Config.ClientSecret != ""
}

func (p *GoogleOAuthProvider) AuthCodeURL(state string) string {
	return p.Config.AuthCodeURL(state)
}

func (p *GoogleOAuthProvider) FetchProfile(ctx context.Context, code string) (*GoogleProfile, error) {
	if p.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.HTTPClient)
	}
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	response, err := p.Config.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, errors.New("userinfo request failed")
	}

	var profile GoogleProfile
	if err := json.NewDecoder(response.Body).Decode(&profile); err != nil {
		return nil, err
	}
	if profile.ID == "" {
		return nil, errors.New("userinfo response missing subject")
	}
	return &profile, nil
}
