package sportsday

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials for the sports-day API. Client credentials win over a static token
// when both are configured.
type Credentials struct {
	Token        string
	ClientID     string
	ClientSecret string
	TokenURL     string
}

func (c Credentials) hasClientCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.TokenURL != ""
}

// NewHTTPClient returns an http.Client that authenticates every request it sends.
func NewHTTPClient(ctx context.Context, creds Credentials, timeout time.Duration) *http.Client {
	var httpClient *http.Client
	switch {
	case creds.hasClientCredentials():
		cfg := &clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     creds.TokenURL,
		}
		httpClient = cfg.Client(ctx)
	case creds.Token != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.Token, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(ctx, ts)
	default:
		httpClient = &http.Client{}
	}

	httpClient.Timeout = timeout
	return httpClient
}
