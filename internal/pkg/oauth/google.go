package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// ErrEmailNotVerified rejects Google accounts whose email Google has not
// verified; such an email cannot be trusted for account linking.
var ErrEmailNotVerified = errors.New("google account email is not verified")

// Profile is the subset of the Google userinfo payload the login flow needs.
// Subject is Google's stable account identifier.
type Profile struct {
	Subject       string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	EmailVerified bool   `json:"verified_email"`
}

type GoogleService interface {
	// GenerateState returns a random state nonce for the OAuth2 flow.
	GenerateState() string
	// AuthURL builds the Google consent page URL carrying the state.
	AuthURL(state string) string
	// FetchProfile exchanges the authorization code and returns the
	// verified Google profile.
	FetchProfile(ctx context.Context, code string) (Profile, error)
}

type GoogleServiceImpl struct {
	config *oauth2.Config
}

func NewGoogleService(clientID string, clientSecret string, redirectURL string, scopes []string) GoogleService {
	return &GoogleServiceImpl{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// GenerateState implements GoogleService.
func (g *GoogleServiceImpl) GenerateState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// AuthURL implements GoogleService.
func (g *GoogleServiceImpl) AuthURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// FetchProfile implements GoogleService.
func (g *GoogleServiceImpl) FetchProfile(ctx context.Context, code string) (Profile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	resp, err := g.config.Client(ctx, token).Get(userinfoEndpoint)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to fetch google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return Profile{}, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("failed to decode google userinfo: %w", err)
	}

	if !profile.EmailVerified {
		return Profile{}, ErrEmailNotVerified
	}

	return profile, nil
}
