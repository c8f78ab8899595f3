package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/domain/dto"
	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/ports"
	"github.com/maharjanPranish/NepXplore/internal/config"
	"github.com/maharjanPranish/NepXplore/internal/mylogger"
)

const (
	authEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenEndpoint    = "https://oauth2.googleapis.com/token"
	userinfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"
)

type GoogleClient struct {
	clientID     string
	clientSecret string
	redirectURL  string
	client       *http.Client
	mylog        mylogger.Logger
}

func NewGoogleClient(cfg *config.Config, mylog mylogger.Logger) ports.IOAuthClient {
	return &GoogleClient{
		clientID:     cfg.App.GoogleClientID,
		clientSecret: cfg.App.GoogleClientSecret,
		redirectURL:  cfg.App.GoogleRedirectURL,
		client:       &http.Client{Timeout: 10 * time.Second},
		mylog:        mylog,
	}
}

// AuthURL builds the consent page URL the browser is redirected to.
func (gc *GoogleClient) AuthURL(state string) string {
	v := url.Values{}
	v.Set("client_id", gc.clientID)
	v.Set("redirect_uri", gc.redirectURL)
	v.Set("response_type", "code")
	v.Set("scope", "openid email profile")
	v.Set("state", state)
	return authEndpoint + "?" + v.Encode()
}

// Exchange trades the authorization code for an access token and fetches
// the user's profile with it.
func (gc *GoogleClient) Exchange(ctx context.Context, code string) (dto.GoogleProfile, error) {
	v := url.Values{}
	v.Set("code", code)
	v.Set("client_id", gc.clientID)
	v.Set("client_secret", gc.clientSecret)
	v.Set("redirect_uri", gc.redirectURL)
	v.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenEndpoint, strings.NewReader(v.Encode()))
	if err != nil {
		return dto.GoogleProfile{}, fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := gc.client.Do(req)
	if err != nil {
		return dto.GoogleProfile{}, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return dto.GoogleProfile{}, fmt.Errorf("reading token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return dto.GoogleProfile{}, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, data)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(data, &token); err != nil {
		return dto.GoogleProfile{}, fmt.Errorf("unmarshaling token response: %w", err)
	}

	return gc.fetchProfile(ctx, token.AccessToken)
}

func (gc *GoogleClient) fetchProfile(ctx context.Context, accessToken string) (dto.GoogleProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoEndpoint, nil)
	if err != nil {
		return dto.GoogleProfile{}, fmt.Errorf("creating userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := gc.client.Do(req)
	if err != nil {
		return dto.GoogleProfile{}, fmt.Errorf("executing userinfo request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return dto.GoogleProfile{}, fmt.Errorf("reading userinfo response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return dto.GoogleProfile{}, fmt.Errorf("userinfo endpoint returned %d: %s", resp.StatusCode, data)
	}

	var profile dto.GoogleProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return dto.GoogleProfile{}, fmt.Errorf("unmarshaling userinfo response: %w", err)
	}
	return profile, nil
}
