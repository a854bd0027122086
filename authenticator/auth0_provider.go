package authenticator

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Auth0Provider implements TokenProvider with the client-credentials grant
type Auth0Provider struct {
	config     clientcredentials.Config
	httpClient *http.Client
}

// Auth0Config holds Auth0-specific configuration
type Auth0Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Audience     string

	// HTTPClient is used for the token exchange; http.DefaultClient when nil
	HTTPClient *http.Client
}

// NewAuth0Provider creates a new Auth0 token provider with the given configuration
func NewAuth0Provider(cfg Auth0Config) (*Auth0Provider, error) {
	// Validate required configuration
	if cfg.TokenURL == "" {
		return nil, errors.New("token URL is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.Audience == "" {
		return nil, errors.New("audience is required")
	}

	conf := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		EndpointParams: url.Values{
			"audience": {cfg.Audience},
		},
		// Auth0 expects the credentials in the request body
		AuthStyle: oauth2.AuthStyleInParams,
	}

	return &Auth0Provider{
		config:     conf,
		httpClient: cfg.HTTPClient,
	}, nil
}

// AcquireToken exchanges the client credentials for a fresh access token.
// Nothing is cached: every call performs one POST to the token endpoint.
func (p *Auth0Provider) AcquireToken(ctx context.Context) (string, error) {
	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	token, err := p.config.Token(ctx)
	if err != nil {
		authErr := &AuthError{Err: err}
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			authErr.StatusCode = retrieveErr.Response.StatusCode
		}
		return "", authErr
	}

	return token.AccessToken, nil
}
